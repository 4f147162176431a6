/*
Package registry manages entity type names and index maps for the DynamoDB
engine.

The registry system enables:
  - Several entity types sharing one DynamoDB table
  - An EntityType attribute stored with, and filtered on, every item
  - Flexible key patterns through index maps

Type Registry:
Maps Go types to the EntityType value:

	registry.RegisterEntityType[Train]("Train")

Index Map Registry:
Associates Go types with DynamoDB key templates:

	registry.RegisterIndexMap[Train](map[string]string{
	    "PK":  "TRAIN#{ID}",
	    "SK":  "TRAIN#{ID}",
	    "PK1": "TRAINS",
	    "SK1": "REF#{Reference}",
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
