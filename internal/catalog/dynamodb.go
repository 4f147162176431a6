/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/entitymanager/datastore/ddb"
	"github.com/suparena/entitymanager/paging"
	"github.com/suparena/entitymanager/query"
	"github.com/suparena/entitymanager/registry"
	"github.com/suparena/entitymanager/storagemodels"
)

// TrainEntityType is the EntityType attribute of trains in DynamoDB.
const TrainEntityType = "Train"

// trainsPartition is the GSI1 partition holding every train, sorted by reference.
const trainsPartition = "TRAINS"

func init() {
	registry.RegisterIndexMap[Train](map[string]string{
		"PK":  "TRAIN#{ID}",
		"SK":  "TRAIN#{ID}",
		"PK1": trainsPartition,
		"SK1": "REF#{Reference}",
	})
	registry.RegisterEntityType[Train](TrainEntityType)
}

// trainItem is the DynamoDB representation of a Train.
type trainItem struct {
	ID        string `dynamodbav:"ID"`
	Reference string `dynamodbav:"Reference"`
	Name      string `dynamodbav:"Name,omitempty"`
	CreatedAt string `dynamodbav:"CreatedAt,omitempty"`
	UpdatedAt string `dynamodbav:"UpdatedAt,omitempty"`
}

func formatTime(dt strfmt.DateTime) string {
	if time.Time(dt).IsZero() {
		return ""
	}
	return dt.String()
}

func parseTime(s string) (strfmt.DateTime, error) {
	if s == "" {
		return strfmt.DateTime{}, nil
	}
	return strfmt.ParseDateTime(s)
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (t Train) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return attributevalue.Marshal(trainItem{
		ID:        t.ID.String(),
		Reference: t.Reference,
		Name:      t.Name,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	})
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (t *Train) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var item trainItem
	if err := attributevalue.Unmarshal(av, &item); err != nil {
		return err
	}

	id, err := uuid.Parse(item.ID)
	if err != nil {
		return fmt.Errorf("train ID: %w", err)
	}
	created, err := parseTime(item.CreatedAt)
	if err != nil {
		return fmt.Errorf("train CreatedAt: %w", err)
	}
	updated, err := parseTime(item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("train UpdatedAt: %w", err)
	}

	*t = Train{
		ID:        id,
		Reference: item.Reference,
		Name:      item.Name,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	return nil
}

// DynamoDBSpecs builds the QueryParams of the ddb engine. Listings query
// GSI1, where trains share one partition sorted by reference, so the search
// criteria is matched as a reference prefix and only reference ordering is
// available.
type DynamoDBSpecs struct{}

var _ query.Factory[Train, *storagemodels.QueryParams, storagemodels.Sort] = DynamoDBSpecs{}

// mustBuild panics on a builder error, which only happens when the Train
// index map is not registered.
func mustBuild(params *storagemodels.QueryParams, err error) *storagemodels.QueryParams {
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return params
}

func (DynamoDBSpecs) DefaultSpec() *storagemodels.QueryParams {
	return mustBuild(ddb.NewQueryBuilder[Train]().
		OnIndex("GSI1").
		WithPartitionKey(trainsPartition).
		Build())
}

func (DynamoDBSpecs) ReadSpec(entity *Train) *storagemodels.QueryParams {
	id := entity.ID.String()
	return mustBuild(ddb.NewQueryBuilder[Train]().
		WithPartitionKey(id).
		WithSortKey(id).
		Build())
}

func (s DynamoDBSpecs) DeleteSpec(entity *Train) *storagemodels.QueryParams {
	return s.ReadSpec(entity)
}

func (DynamoDBSpecs) PageSpec(filter paging.Filter) *storagemodels.QueryParams {
	return mustBuild(ddb.NewQueryBuilder[Train]().
		OnIndex("GSI1").
		WithPartitionKey(trainsPartition).
		WithSortKeyPrefix(filter.SearchCriteria).
		Build())
}

func (DynamoDBSpecs) SortSpec(filter paging.Filter) storagemodels.Sort {
	return storagemodels.Sort{
		IndexName: aws.String("GSI1"),
		Ascending: filter.SortAscending(),
	}
}
