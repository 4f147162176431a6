/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// queryWithRetry executes a query, retrying transient errors with linear backoff
func (d *Store[T]) queryWithRetry(ctx context.Context, input *sdk.QueryInput) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= d.options.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < d.options.MaxRetries {
			backoff := time.Duration(attempt+1) * d.options.RetryBackoff
			d.logger.WarnContext(ctx, "retrying dynamodb query",
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
				slog.Any("error", err),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", d.options.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	var retryable interface{ RetryableError() bool }
	if errors.As(err, &retryable) {
		return retryable.RetryableError()
	}
	return false
}
