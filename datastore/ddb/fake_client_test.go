/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sync"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient keeps items keyed by PK and SK. Queries are answered by
// queryFunc, which sees every input the store sends.
type fakeClient struct {
	mu        sync.Mutex
	items     map[string]map[string]types.AttributeValue
	queries   []*sdk.QueryInput
	deletes   []*sdk.DeleteItemInput
	queryFunc func(input *sdk.QueryInput, call int) (*sdk.QueryOutput, error)
	putError  error
}

func newFakeClient() *fakeClient {
	return &fakeClient{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(item map[string]types.AttributeValue) string {
	pk, _ := item["PK"].(*types.AttributeValueMemberS)
	sk, _ := item["SK"].(*types.AttributeValueMemberS)
	if pk == nil || sk == nil {
		return ""
	}
	return pk.Value + "|" + sk.Value
}

func (f *fakeClient) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	if f.putError != nil {
		return nil, f.putError
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	key := itemKey(params.Item)
	_, exists := f.items[key]
	if params.ConditionExpression != nil {
		switch *params.ConditionExpression {
		case "attribute_not_exists(PK)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(PK)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}
	f.items[key] = params.Item
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, params)
	key := itemKey(params.Key)
	if _, exists := f.items[key]; !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	delete(f.items, key)
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	f.queries = append(f.queries, params)
	call := len(f.queries)
	fn := f.queryFunc
	f.mu.Unlock()

	if fn == nil {
		return &sdk.QueryOutput{}, nil
	}
	return fn(params, call)
}

func (f *fakeClient) item(pk, sk string) (map[string]types.AttributeValue, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[pk+"|"+sk]
	return item, ok
}
