/*
Package config loads the configuration of the entitymanager command.

Values are layered, later layers winning:

 1. Default()
 2. the YAML file passed to Load
 3. ENTITYMANAGER_* environment variables, e.g. ENTITYMANAGER_BACKEND,
    ENTITYMANAGER_DYNAMODB_TABLE, ENTITYMANAGER_PAGING_MAX_LIMIT

A .env file in the working directory is loaded into the environment first.

Example YAML:

	backend: ddb
	dynamodb:
	  table: trains
	  region: eu-west-1
	  retryBackoff: 500ms
	paging:
	  maxLimit: 50
	log:
	  level: debug
*/
package config
