/*
Package gocqlsource adapts gocql query results and schema metadata to the
driver boundary types.

The adapter captures column cells exactly as they arrived on the wire by
scanning every column into a gocql.Unmarshaler that copies the raw bytes
instead of decoding them. Decoding stays with the value package, which keeps
the SDK's null and empty-cell semantics independent of gocql's own
unmarshalling rules.

	iter := session.Query("SELECT ...").PageSize(100).Iter()
	res, err := result.New(result.Config{
		Source: gocqlsource.New(gocqlsource.Config{Iter: iter}),
	})
*/
package gocqlsource
