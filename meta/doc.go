/*
Package meta is an immutable snapshot of the cluster schema: keyspaces,
tables, materialized views, user-defined types, and columns.

The snapshot is built once from driver descriptors and never mutated, so
every accessor is safe for concurrent use. Name collections are indexed both
by name (exact match) and by position; positional iteration is
deterministic, with names in lexicographic order, except for table columns
which follow the key layout: partition key components in key order, then
clustering key components in key order, then the remaining columns sorted
by name.

A materialized view holds its base table by name, not by pointer: the table
is resolved against the owning keyspace on every BaseTable call, so a view
whose base table is absent from the snapshot resolves to nil instead of a
dangling reference.
*/
package meta
