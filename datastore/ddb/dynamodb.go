/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitymanager/datastore"
	entityerrors "github.com/suparena/entitymanager/errors"
	"github.com/suparena/entitymanager/registry"
	"github.com/suparena/entitymanager/storagemodels"
)

const entityTypeAttribute = "EntityType"

// Store implements datastore.Repository on a single DynamoDB table. Keys are
// expanded from the index map registered for T; the EntityType registered
// for T is stored with every item and scopes every query.
type Store[T any] struct {
	client    Client
	tableName string
	logger    *slog.Logger
	options   storagemodels.QueryOptions
}

var _ datastore.Repository[struct{}, *storagemodels.QueryParams, storagemodels.Sort] = (*Store[struct{}])(nil)

// Option configures a Store.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	options storagemodels.QueryOptions
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithQueryOptions adjusts retry and page size settings.
func WithQueryOptions(opts ...storagemodels.QueryOption) Option {
	return func(s *settings) {
		for _, opt := range opts {
			opt(&s.options)
		}
	}
}

// New constructs a Store for type T on tableName.
func New[T any](client Client, tableName string, opts ...Option) (*Store[T], error) {
	if client == nil {
		return nil, entityerrors.NewArgumentError("client")
	}
	if tableName == "" {
		return nil, entityerrors.NewValidationError("tableName", "must not be empty")
	}

	s := settings{
		logger:  slog.Default(),
		options: storagemodels.DefaultQueryOptions(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &Store[T]{
		client:    client,
		tableName: tableName,
		logger:    s.logger,
		options:   s.options,
	}, nil
}

// TableName returns the table the store writes to.
func (d *Store[T]) TableName() string {
	return d.tableName
}

// Create puts entity unless an item with the same primary key exists.
func (d *Store[T]) Create(ctx context.Context, entity *T) (bool, error) {
	return d.put(ctx, entity, "attribute_not_exists(PK)")
}

// Update replaces the item sharing entity's primary key. Returns false when
// there is no such item.
func (d *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	return d.put(ctx, entity, "attribute_exists(PK)")
}

func (d *Store[T]) put(ctx context.Context, entity *T, condition string) (bool, error) {
	if entity == nil {
		return false, entityerrors.NewArgumentError("entity")
	}

	item, err := d.marshalItem(entity)
	if err != nil {
		return false, err
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                item,
		ConditionExpression: aws.String(condition),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			d.logger.DebugContext(ctx, "put condition failed", slog.String("condition", condition))
			return false, nil
		}
		return false, fmt.Errorf("PutItem failed: %w", err)
	}
	return true, nil
}

// Get returns the first item matching spec.
func (d *Store[T]) Get(ctx context.Context, spec *storagemodels.QueryParams) (*T, bool, error) {
	input, err := d.queryInput(spec, nil)
	if err != nil {
		return nil, false, err
	}

	var found *T
	err = d.eachItem(ctx, input, func(item map[string]types.AttributeValue) (bool, error) {
		entity, err := unmarshalItem[T](item)
		if err != nil {
			return false, err
		}
		found = entity
		return false, nil
	})
	if err != nil {
		return nil, false, err
	}
	return found, found != nil, nil
}

// Delete removes every item matching spec. Returns false when nothing was removed.
func (d *Store[T]) Delete(ctx context.Context, spec *storagemodels.QueryParams) (bool, error) {
	input, err := d.queryInput(spec, nil)
	if err != nil {
		return false, err
	}

	var keys []map[string]types.AttributeValue
	err = d.eachItem(ctx, input, func(item map[string]types.AttributeValue) (bool, error) {
		pk, hasPK := item[TableKeys.PartitionKeyName]
		sk, hasSK := item[TableKeys.SortKeyName]
		if !hasPK || !hasSK {
			return false, fmt.Errorf("item is missing %s or %s", TableKeys.PartitionKeyName, TableKeys.SortKeyName)
		}
		keys = append(keys, map[string]types.AttributeValue{
			TableKeys.PartitionKeyName: pk,
			TableKeys.SortKeyName:      sk,
		})
		return true, nil
	})
	if err != nil {
		return false, err
	}

	removed := false
	for _, key := range keys {
		_, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName:           &d.tableName,
			Key:                 key,
			ConditionExpression: aws.String("attribute_exists(PK)"),
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return removed, fmt.Errorf("failed to delete item in DynamoDB: %w", err)
		}
		removed = true
	}
	return removed, nil
}

// Count returns the number of items matching spec.
func (d *Store[T]) Count(ctx context.Context, spec *storagemodels.QueryParams) (int64, error) {
	input, err := d.queryInput(spec, nil)
	if err != nil {
		return 0, err
	}
	input.Select = types.SelectCount

	var total int64
	err = d.eachPage(ctx, input, func(out *sdk.QueryOutput) (bool, error) {
		total += int64(out.Count)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Page returns at most limit items matching spec after skipping offset,
// ordered by the sort key of the index selected by sort.
func (d *Store[T]) Page(ctx context.Context, offset, limit int, spec *storagemodels.QueryParams, sort storagemodels.Sort) ([]*T, error) {
	input, err := d.queryInput(spec, &sort)
	if err != nil {
		return nil, err
	}

	items := make([]*T, 0, max(limit, 0))
	if limit <= 0 {
		return items, nil
	}

	skipped := 0
	err = d.eachItem(ctx, input, func(item map[string]types.AttributeValue) (bool, error) {
		if skipped < offset {
			skipped++
			return true, nil
		}
		entity, err := unmarshalItem[T](item)
		if err != nil {
			return false, err
		}
		items = append(items, entity)
		return len(items) < limit, nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// eachPage runs input page by page until fn returns false or the result set ends.
func (d *Store[T]) eachPage(ctx context.Context, input *sdk.QueryInput, fn func(out *sdk.QueryOutput) (bool, error)) error {
	for {
		out, err := d.queryWithRetry(ctx, input)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return entityerrors.NewCancelledError("query", ctxErr)
			}
			return fmt.Errorf("query error: %w", err)
		}

		more, err := fn(out)
		if err != nil {
			return err
		}
		if !more || len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// eachItem runs input until fn returns false or the result set ends.
func (d *Store[T]) eachItem(ctx context.Context, input *sdk.QueryInput, fn func(item map[string]types.AttributeValue) (bool, error)) error {
	return d.eachPage(ctx, input, func(out *sdk.QueryOutput) (bool, error) {
		for _, item := range out.Items {
			more, err := fn(item)
			if err != nil || !more {
				return false, err
			}
		}
		return true, nil
	})
}

// queryInput converts a descriptor into a QueryInput scoped to T's entity type.
func (d *Store[T]) queryInput(spec *storagemodels.QueryParams, sort *storagemodels.Sort) (*sdk.QueryInput, error) {
	if spec == nil {
		return nil, entityerrors.NewArgumentError("spec")
	}
	if spec.KeyConditionExpression == "" {
		return nil, entityerrors.NewValidationError("KeyConditionExpression", "must not be empty")
	}

	p := spec.Clone()
	if p.TableName == "" {
		p.TableName = d.tableName
	}
	if p.Limit == nil && d.options.PageSize > 0 {
		p.Limit = aws.Int32(d.options.PageSize)
	}
	if sort != nil {
		if sort.IndexName != nil {
			p.IndexName = sort.IndexName
		}
		p.ScanIndexForward = aws.Bool(sort.Ascending)
	}

	if name, ok := registry.EntityTypeName[T](); ok {
		if p.ExpressionAttributeNames == nil {
			p.ExpressionAttributeNames = make(map[string]string)
		}
		if p.ExpressionAttributeValues == nil {
			p.ExpressionAttributeValues = make(map[string]types.AttributeValue)
		}
		p.ExpressionAttributeNames["#entityType"] = entityTypeAttribute
		p.ExpressionAttributeValues[":entityType"] = &types.AttributeValueMemberS{Value: name}

		filter := "#entityType = :entityType"
		if p.FilterExpression != nil && *p.FilterExpression != "" {
			filter = "(" + *p.FilterExpression + ") AND " + filter
		}
		p.FilterExpression = aws.String(filter)
	}

	input := &sdk.QueryInput{
		TableName:                 aws.String(p.TableName),
		KeyConditionExpression:    aws.String(p.KeyConditionExpression),
		FilterExpression:          p.FilterExpression,
		ExpressionAttributeValues: p.ExpressionAttributeValues,
		IndexName:                 p.IndexName,
		Limit:                     p.Limit,
		ExclusiveStartKey:         p.ExclusiveStartKey,
		ScanIndexForward:          p.ScanIndexForward,
	}
	if len(p.ExpressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = p.ExpressionAttributeNames
	}
	return input, nil
}

// marshalItem marshals entity and adds the expanded keys and EntityType.
func (d *Store[T]) marshalItem(entity *T) (map[string]types.AttributeValue, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w for %T", entityerrors.ErrNoIndexMap, *entity)
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, incomplete := expandMacros(indexMap, av)
	for _, key := range []string{TableKeys.PartitionKeyName, TableKeys.SortKeyName} {
		if expanded[key] == "" || incomplete[key] {
			return nil, entityerrors.NewValidationError(key, "key template has unresolved attributes")
		}
	}

	// Insert the expanded fields as PK, SK, etc.
	for field, value := range expanded {
		av[field] = &types.AttributeValueMemberS{Value: value}
	}

	if name, ok := registry.EntityTypeName[T](); ok {
		av[entityTypeAttribute] = &types.AttributeValueMemberS{Value: name}
	}
	return av, nil
}

func unmarshalItem[T any](item map[string]types.AttributeValue) (*T, error) {
	result := new(T)
	if err := attributevalue.UnmarshalMap(item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills each template of indexMap with attribute values of av,
// e.g. "TRAIN#{ID}" becomes "TRAIN#42". Missing or non-scalar attributes
// expand to the empty string and mark the field as incomplete.
func expandMacros(indexMap map[string]string, av map[string]types.AttributeValue) (map[string]string, map[string]bool) {
	res := make(map[string]string, len(indexMap))
	incomplete := make(map[string]bool)

	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			key := strings.Trim(macro, "{}")

			var value string
			switch tv := av[key].(type) {
			case *types.AttributeValueMemberS:
				value = tv.Value
			case *types.AttributeValueMemberN:
				value = tv.Value
			case *types.AttributeValueMemberBOOL:
				value = fmt.Sprintf("%v", tv.Value)
			}
			if value == "" {
				incomplete[fieldName] = true
			}
			return value
		})
	}
	return res, incomplete
}

// expandStringKey replaces every macro of template with value.
func expandStringKey(template, value string) string {
	return macroPattern.ReplaceAllLiteralString(template, value)
}
