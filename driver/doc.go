/*
Package driver defines the narrow boundary between the SDK and the external
query-execution collaborator.

The collaborator (a CQL driver) is expected to have already executed the
query, fetched pages, and split the response frame into per-column byte
cells; this package only names the payload shapes it hands over: RawResult
for query results and the *Desc family for schema snapshots. The Source
interface is what result construction consumes, so tests can inject canned
payloads (see the mock subpackage) and production code can plug in the gocql
adapter (see the gocqlsource subpackage).

Cell convention: a nil []byte cell is a CQL null; a non-nil zero-length cell
is a present-but-empty value. The distinction matters because several CQL
types treat the two differently.
*/
package driver
