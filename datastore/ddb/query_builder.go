/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"maps"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitymanager/registry"
	"github.com/suparena/entitymanager/storagemodels"
)

// QueryBuilder provides a fluent interface for building the QueryParams of
// an entity type, against the table or one of its GSIs. Key values are
// expanded through the templates of T's index map, so WithPartitionKey("42")
// against "TRAIN#{ID}" yields "TRAIN#42".
type QueryBuilder[T any] struct {
	keys        GSIConfig
	pkValue     string
	skValue     string
	skValue2    string
	skOperator  string // "=", "begins_with", ">", "<", "BETWEEN"
	filters     []string
	filterVals  map[string]types.AttributeValue
	filterNames map[string]string
	limit       *int32
	err         error
}

// NewQueryBuilder creates a builder querying the table's primary key.
func NewQueryBuilder[T any]() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		keys:        TableKeys,
		filterVals:  make(map[string]types.AttributeValue),
		filterNames: make(map[string]string),
	}
}

// OnIndex switches the builder to the named GSI.
func (q *QueryBuilder[T]) OnIndex(indexName string) *QueryBuilder[T] {
	cfg, ok := GetGSIConfig(indexName)
	if !ok {
		q.err = fmt.Errorf("unknown GSI %q", indexName)
		return q
	}
	q.keys = cfg
	return q
}

// WithPartitionKey sets the partition key value
func (q *QueryBuilder[T]) WithPartitionKey(value string) *QueryBuilder[T] {
	q.pkValue = value
	return q
}

// WithSortKey sets the sort key value with equals operator
func (q *QueryBuilder[T]) WithSortKey(value string) *QueryBuilder[T] {
	return q.sortKey("=", value)
}

// WithSortKeyPrefix sets the sort key to use begins_with operator
func (q *QueryBuilder[T]) WithSortKeyPrefix(prefix string) *QueryBuilder[T] {
	return q.sortKey("begins_with", prefix)
}

// WithSortKeyGreaterThan sets the sort key to use > operator
func (q *QueryBuilder[T]) WithSortKeyGreaterThan(value string) *QueryBuilder[T] {
	return q.sortKey(">", value)
}

// WithSortKeyLessThan sets the sort key to use < operator
func (q *QueryBuilder[T]) WithSortKeyLessThan(value string) *QueryBuilder[T] {
	return q.sortKey("<", value)
}

// WithSortKeyBetween sets the sort key to use BETWEEN operator
func (q *QueryBuilder[T]) WithSortKeyBetween(start, end string) *QueryBuilder[T] {
	q.skValue2 = end
	return q.sortKey("BETWEEN", start)
}

func (q *QueryBuilder[T]) sortKey(operator, value string) *QueryBuilder[T] {
	q.skOperator = operator
	q.skValue = value
	return q
}

// WithFilter adds a filter expression. Filters are joined with AND.
func (q *QueryBuilder[T]) WithFilter(expression string, names map[string]string, values map[string]types.AttributeValue) *QueryBuilder[T] {
	q.filters = append(q.filters, expression)
	maps.Copy(q.filterNames, names)
	maps.Copy(q.filterVals, values)
	return q
}

// WithLimit sets the page size of the query
func (q *QueryBuilder[T]) WithLimit(limit int32) *QueryBuilder[T] {
	q.limit = aws.Int32(limit)
	return q
}

// Build constructs the final query parameters
func (q *QueryBuilder[T]) Build() (*storagemodels.QueryParams, error) {
	if q.err != nil {
		return nil, q.err
	}
	if q.pkValue == "" {
		return nil, fmt.Errorf("partition key value is required")
	}

	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("no index map found for type %T", *new(T))
	}

	params := &storagemodels.QueryParams{
		ExpressionAttributeValues: make(map[string]types.AttributeValue),
		Limit:                     q.limit,
	}
	if q.keys.IndexName != "" {
		params.IndexName = aws.String(q.keys.IndexName)
	}

	pkPattern, ok := indexMap[q.keys.PartitionKeyName]
	if !ok {
		return nil, fmt.Errorf("%s not found in index map", q.keys.PartitionKeyName)
	}
	keyConditions := []string{q.keys.PartitionKeyName + " = :pk"}
	params.ExpressionAttributeValues[":pk"] = &types.AttributeValueMemberS{Value: expandStringKey(pkPattern, q.pkValue)}

	if q.skOperator != "" {
		skPattern, ok := indexMap[q.keys.SortKeyName]
		if !ok {
			return nil, fmt.Errorf("%s not found in index map", q.keys.SortKeyName)
		}
		sk := q.keys.SortKeyName
		params.ExpressionAttributeValues[":sk"] = &types.AttributeValueMemberS{Value: expandStringKey(skPattern, q.skValue)}

		switch q.skOperator {
		case "begins_with":
			keyConditions = append(keyConditions, "begins_with("+sk+", :sk)")
		case "BETWEEN":
			keyConditions = append(keyConditions, sk+" BETWEEN :sk AND :sk2")
			params.ExpressionAttributeValues[":sk2"] = &types.AttributeValueMemberS{Value: expandStringKey(skPattern, q.skValue2)}
		default:
			keyConditions = append(keyConditions, sk+" "+q.skOperator+" :sk")
		}
	}
	params.KeyConditionExpression = strings.Join(keyConditions, " AND ")

	if len(q.filters) > 0 {
		params.FilterExpression = aws.String(strings.Join(q.filters, " AND "))
		maps.Copy(params.ExpressionAttributeValues, q.filterVals)
		if len(q.filterNames) > 0 {
			params.ExpressionAttributeNames = maps.Clone(q.filterNames)
		}
	}

	return params, nil
}
