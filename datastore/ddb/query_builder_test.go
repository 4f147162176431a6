/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBuilder(t *testing.T) {
	t.Run("TableKey", func(t *testing.T) {
		params, err := NewQueryBuilder[Wagon]().WithPartitionKey("7").Build()
		require.NoError(t, err)
		assert.Nil(t, params.IndexName)
		assert.Equal(t, "PK = :pk", params.KeyConditionExpression)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "WAGON#7"}, params.ExpressionAttributeValues[":pk"])
	})

	t.Run("GSIWithPrefix", func(t *testing.T) {
		params, err := NewQueryBuilder[Wagon]().
			OnIndex("GSI1").
			WithPartitionKey("ignored").
			WithSortKeyPrefix("hop").
			WithLimit(25).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "GSI1", *params.IndexName)
		assert.Equal(t, "PK1 = :pk AND begins_with(SK1, :sk)", params.KeyConditionExpression)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "WAGONS"}, params.ExpressionAttributeValues[":pk"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "KIND#hop"}, params.ExpressionAttributeValues[":sk"])
		assert.Equal(t, int32(25), *params.Limit)
	})

	t.Run("SortKeyOperators", func(t *testing.T) {
		tests := []struct {
			name     string
			build    func(*QueryBuilder[Wagon]) *QueryBuilder[Wagon]
			expected string
		}{
			{"Equals", func(q *QueryBuilder[Wagon]) *QueryBuilder[Wagon] { return q.WithSortKey("a") }, "SK1 = :sk"},
			{"GreaterThan", func(q *QueryBuilder[Wagon]) *QueryBuilder[Wagon] { return q.WithSortKeyGreaterThan("a") }, "SK1 > :sk"},
			{"LessThan", func(q *QueryBuilder[Wagon]) *QueryBuilder[Wagon] { return q.WithSortKeyLessThan("a") }, "SK1 < :sk"},
			{"Between", func(q *QueryBuilder[Wagon]) *QueryBuilder[Wagon] { return q.WithSortKeyBetween("a", "m") }, "SK1 BETWEEN :sk AND :sk2"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params, err := tt.build(NewQueryBuilder[Wagon]().OnIndex("GSI1").WithPartitionKey("x")).Build()
				require.NoError(t, err)
				assert.Equal(t, "PK1 = :pk AND "+tt.expected, params.KeyConditionExpression)
			})
		}

		params, _ := NewQueryBuilder[Wagon]().OnIndex("GSI1").WithPartitionKey("x").WithSortKeyBetween("a", "m").Build()
		assert.Equal(t, &types.AttributeValueMemberS{Value: "KIND#m"}, params.ExpressionAttributeValues[":sk2"])
	})

	t.Run("Filters", func(t *testing.T) {
		params, err := NewQueryBuilder[Wagon]().
			WithPartitionKey("7").
			WithFilter("#w > :w", map[string]string{"#w": "Weight"}, map[string]types.AttributeValue{
				":w": &types.AttributeValueMemberN{Value: "10"},
			}).
			WithFilter("attribute_exists(Kind)", nil, nil).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "#w > :w AND attribute_exists(Kind)", *params.FilterExpression)
		assert.Equal(t, "Weight", params.ExpressionAttributeNames["#w"])
		assert.Contains(t, params.ExpressionAttributeValues, ":w")
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := NewQueryBuilder[Wagon]().OnIndex("GSI9").WithPartitionKey("x").Build()
		assert.Error(t, err)

		_, err = NewQueryBuilder[unmappedEntity]().WithPartitionKey("x").Build()
		assert.Error(t, err)
	})
}
