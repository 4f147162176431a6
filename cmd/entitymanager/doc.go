/*
Command entitymanager creates, reads, updates, deletes and lists trains
through an entity manager over the configured storage backend.

	entitymanager --backend badger create --reference IC-501 --name Zephyr
	entitymanager read --id 7b1c1f6e-2d2a-4c5e-9a43-0c7d8e6a1b2f
	entitymanager page --search IC --order-by reference --sort-as ASC --limit 10
	entitymanager -c config.yaml -l debug delete --id 7b1c1f6e-2d2a-4c5e-9a43-0c7d8e6a1b2f

Results are printed as JSON. Backend settings come from the configuration
file and ENTITYMANAGER_* environment variables; see package config.
*/
package main
