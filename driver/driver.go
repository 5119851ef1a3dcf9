package driver

import (
	"github.com/google/uuid"

	"github.com/cqlbridge/sdk/datatype"
)

// ColumnSpec describes a single column of a rows result.
type ColumnSpec struct {
	// Name is the column name as reported by the server.
	Name string

	// Type is the full declared type of the column.
	Type *datatype.DataType
}

// RawResult is one page of a query result in undecoded form. Rows hold one
// byte cell per column; cells are decoded lazily, never at construction.
type RawResult struct {
	// IsRows reports whether the server response carried a rows payload.
	// Responses to DDL, USE and similar statements do not.
	IsRows bool

	// Columns describes the result columns, in server order. Empty for
	// non-rows results.
	Columns []ColumnSpec

	// Rows holds the undecoded rows of this page. Each row has exactly
	// len(Columns) cells. A nil cell is a CQL null.
	Rows [][][]byte

	// PagingState is the opaque cursor for fetching the next page, if any.
	PagingState []byte

	// HasMorePages reports whether another page can be fetched with
	// PagingState.
	HasMorePages bool

	// TracingID is the server-side tracing session id, when tracing was
	// enabled for the query.
	TracingID *uuid.UUID
}

// Source produces a RawResult. Implementations wrap a concrete driver
// response or, in tests, a canned payload.
type Source interface {
	Result() (RawResult, error)
}

// ColumnKind is the role a column plays within its table.
type ColumnKind int

const (
	// ColumnRegular is a plain non-key column.
	ColumnRegular ColumnKind = iota

	// ColumnPartitionKey is a partition key component.
	ColumnPartitionKey

	// ColumnClusteringKey is a clustering key component.
	ColumnClusteringKey

	// ColumnStatic is a static column, shared by all rows of a partition.
	ColumnStatic
)

// String returns the driver-facing name of the column kind.
func (k ColumnKind) String() string {
	switch k {
	case ColumnPartitionKey:
		return "partition_key"
	case ColumnClusteringKey:
		return "clustering"
	case ColumnStatic:
		return "static"
	default:
		return "regular"
	}
}

// ColumnDesc describes one column of a table or materialized view.
type ColumnDesc struct {
	Name string
	Type *datatype.DataType
	Kind ColumnKind
}

// TableDesc describes a table as reported by the schema tables of the
// server. PartitionKeys and ClusteringKeys list column names in key
// position order; every listed name must also appear in Columns.
type TableDesc struct {
	Name           string
	Columns        []ColumnDesc
	PartitionKeys  []string
	ClusteringKeys []string
}

// ViewDesc describes a materialized view. BaseTable names the table the
// view is built from, within the same keyspace.
type ViewDesc struct {
	Name           string
	BaseTable      string
	Columns        []ColumnDesc
	PartitionKeys  []string
	ClusteringKeys []string
}

// UserTypeDesc describes a user defined type of a keyspace. Field order is
// the declaration order.
type UserTypeDesc struct {
	Name   string
	Fields []datatype.UDTField
}

// KeyspaceDesc is a snapshot of one keyspace's schema.
type KeyspaceDesc struct {
	Name      string
	Tables    []TableDesc
	Views     []ViewDesc
	UserTypes []UserTypeDesc
}
