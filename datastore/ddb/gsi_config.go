/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

// GSIConfig holds the key attribute names of a table or global secondary index
type GSIConfig struct {
	// IndexName is the actual GSI name in DynamoDB (e.g., "GSI1"); empty for the table itself
	IndexName string
	// PartitionKeyName is the partition key attribute name (e.g., "PK1")
	PartitionKeyName string
	// SortKeyName is the sort key attribute name (e.g., "SK1")
	SortKeyName string
}

// TableKeys describes the primary key of the table
var TableKeys = GSIConfig{
	PartitionKeyName: "PK",
	SortKeyName:      "SK",
}

// DefaultGSIConfigs holds the default GSI configurations
var DefaultGSIConfigs = map[string]GSIConfig{
	"GSI1": {
		IndexName:        "GSI1",
		PartitionKeyName: "PK1",
		SortKeyName:      "SK1",
	},
}

// GetGSIConfig returns the GSI configuration for a given index name
func GetGSIConfig(indexName string) (GSIConfig, bool) {
	config, ok := DefaultGSIConfigs[indexName]
	return config, ok
}
