/*
Package sqlstore provides a database/sql implementation of
datastore.Repository, with a MySQL dialect.

A Mapper describes how an entity type maps onto a table. The filter
descriptor is Where, a SQL boolean expression with placeholders; the sort
descriptor is OrderBy, whose column is checked against the mapper's columns.

	db, err := sqlstore.OpenMySQL(ctx, sqlstore.MySQLConfig{
	    User: "app", Password: "secret", Addr: "127.0.0.1:3306", Database: "rail",
	})
	store, err := sqlstore.New[Train](db, catalog.TrainMapper{})

	n, err := store.Count(ctx, sqlstore.Like("reference", "IC"))

A duplicate primary key on create and zero affected rows on update or delete
are reported as false, not as errors.
*/
package sqlstore
