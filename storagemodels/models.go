/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for a DynamoDB Query operation. It is the
// filter descriptor of the ddb engine.
type QueryParams struct {
	// TableName is the DynamoDB table name. Left empty, the store's table is used.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeNames contains the names for expression placeholders.
	ExpressionAttributeNames map[string]string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ExclusiveStartKey for pagination
	ExclusiveStartKey map[string]types.AttributeValue
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	// If false, traversal is in descending order.
	ScanIndexForward *bool
}

// Clone returns a copy of p whose maps can be modified independently.
func (p *QueryParams) Clone() *QueryParams {
	if p == nil {
		return &QueryParams{}
	}
	c := *p
	if p.ExpressionAttributeNames != nil {
		c.ExpressionAttributeNames = make(map[string]string, len(p.ExpressionAttributeNames))
		for k, v := range p.ExpressionAttributeNames {
			c.ExpressionAttributeNames[k] = v
		}
	}
	if p.ExpressionAttributeValues != nil {
		c.ExpressionAttributeValues = make(map[string]types.AttributeValue, len(p.ExpressionAttributeValues))
		for k, v := range p.ExpressionAttributeValues {
			c.ExpressionAttributeValues[k] = v
		}
	}
	return &c
}

// Sort is the sort descriptor of the ddb engine. DynamoDB orders by the sort
// key of the queried index, so sorting selects the index and the direction.
type Sort struct {
	// IndexName overrides the index of the filter descriptor when set.
	IndexName *string
	// Ascending maps to ScanIndexForward.
	Ascending bool
}
