/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "time"

// QueryOptions configures how the ddb engine runs queries
type QueryOptions struct {
	MaxRetries   int           // Retry attempts for transient errors (default: 3)
	RetryBackoff time.Duration // Backoff between retries, multiplied by attempt (default: 1s)
	PageSize     int32         // Items per DynamoDB page, 0 leaves it to DynamoDB (default: 100)
}

// QueryOption is a functional option for configuring queries
type QueryOption func(*QueryOptions)

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		MaxRetries:   3,
		RetryBackoff: time.Second,
		PageSize:     100,
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) QueryOption {
	return func(opts *QueryOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) QueryOption {
	return func(opts *QueryOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) QueryOption {
	return func(opts *QueryOptions) {
		opts.PageSize = size
	}
}
