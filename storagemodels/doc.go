/*
Package storagemodels defines the DynamoDB descriptors and options used by the
ddb engine.

QueryParams:
The filter descriptor, usually produced by ddb.QueryBuilder:

	params := &QueryParams{
	    KeyConditionExpression: "PK1 = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "TRAINS"},
	    },
	    IndexName: aws.String("GSI1"),
	}

Sort:
The sort descriptor. DynamoDB can only order by the sort key of an index, so
Sort names the index and the direction:

	sort := Sort{IndexName: aws.String("GSI1"), Ascending: true}

QueryOptions:
Retry and page size settings:

	store, err := ddb.New[Train](client, "trains",
	    ddb.WithQueryOptions(
	        storagemodels.WithMaxRetries(5),
	        storagemodels.WithPageSize(50),
	    ),
	)
*/
package storagemodels
