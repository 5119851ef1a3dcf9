package meta

import (
	"sort"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
)

// Column is one column of a table or materialized view.
type Column struct {
	name string
	typ  *datatype.DataType
	kind driver.ColumnKind
}

// Name returns the column name.
func (c *Column) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// DataType returns the full column type.
func (c *Column) DataType() *datatype.DataType {
	if c == nil {
		return nil
	}
	return c.typ
}

// Kind returns the role the column plays within its table.
func (c *Column) Kind() driver.ColumnKind {
	if c == nil {
		return driver.ColumnRegular
	}
	return c.kind
}

// Table is the schema of one table. It doubles as the column layout of a
// materialized view.
type Table struct {
	name    string
	columns map[string]*Column

	// positional layout: partition key components in key order, then
	// clustering key components in key order, then the rest sorted by name
	ordered        []string
	partitionKeys  []string
	clusteringKeys []string

	views     map[string]*View
	viewNames []string
}

func newTable(name string, columns []driver.ColumnDesc, partitionKeys, clusteringKeys []string) *Table {
	t := &Table{
		name:           name,
		columns:        make(map[string]*Column, len(columns)),
		partitionKeys:  partitionKeys,
		clusteringKeys: clusteringKeys,
		views:          make(map[string]*View),
	}

	inKey := make(map[string]bool, len(partitionKeys)+len(clusteringKeys))
	for _, n := range partitionKeys {
		inKey[n] = true
	}
	for _, n := range clusteringKeys {
		inKey[n] = true
	}

	var rest []string
	for _, c := range columns {
		t.columns[c.Name] = &Column{name: c.Name, typ: c.Type, kind: c.Kind}
		if !inKey[c.Name] {
			rest = append(rest, c.Name)
		}
	}
	sort.Strings(rest)

	t.ordered = make([]string, 0, len(columns))
	t.ordered = append(t.ordered, partitionKeys...)
	t.ordered = append(t.ordered, clusteringKeys...)
	t.ordered = append(t.ordered, rest...)
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	if t == nil {
		return 0
	}
	return len(t.ordered)
}

// Column returns the i-th column in positional layout order, or nil.
func (t *Table) Column(i int) *Column {
	if t == nil || i < 0 || i >= len(t.ordered) {
		return nil
	}
	return t.columns[t.ordered[i]]
}

// ColumnByName returns the named column, or nil. Lookup is exact.
func (t *Table) ColumnByName(name string) *Column {
	if t == nil {
		return nil
	}
	return t.columns[name]
}

// PartitionKeyCount returns the number of partition key components.
func (t *Table) PartitionKeyCount() int {
	if t == nil {
		return 0
	}
	return len(t.partitionKeys)
}

// PartitionKey returns the i-th partition key component, or nil.
func (t *Table) PartitionKey(i int) *Column {
	if t == nil || i < 0 || i >= len(t.partitionKeys) {
		return nil
	}
	return t.columns[t.partitionKeys[i]]
}

// ClusteringKeyCount returns the number of clustering key components.
func (t *Table) ClusteringKeyCount() int {
	if t == nil {
		return 0
	}
	return len(t.clusteringKeys)
}

// ClusteringKey returns the i-th clustering key component, or nil.
func (t *Table) ClusteringKey(i int) *Column {
	if t == nil || i < 0 || i >= len(t.clusteringKeys) {
		return nil
	}
	return t.columns[t.clusteringKeys[i]]
}

// ViewCount returns the number of materialized views built from this table.
func (t *Table) ViewCount() int {
	if t == nil {
		return 0
	}
	return len(t.viewNames)
}

// ViewAt returns the i-th view of this table in name order, or nil.
func (t *Table) ViewAt(i int) *View {
	if t == nil || i < 0 || i >= len(t.viewNames) {
		return nil
	}
	return t.views[t.viewNames[i]]
}

// View returns the named view of this table, or nil.
func (t *Table) View(name string) *View {
	if t == nil {
		return nil
	}
	return t.views[name]
}

// View is the schema of one materialized view.
type View struct {
	keyspace  *Keyspace
	baseTable string
	inner     *Table
}

// Name returns the view name.
func (v *View) Name() string {
	return v.table().Name()
}

// BaseTable resolves the base table against the owning keyspace. It returns
// nil when the table is no longer part of the snapshot, which indicates an
// inconsistent schema payload from the driver.
func (v *View) BaseTable() *Table {
	if v == nil {
		return nil
	}
	base := v.keyspace.Table(v.baseTable)
	if base == nil {
		logger := sdk.Logger()
		logger.Error().
			Str("keyspace", v.keyspace.Name()).
			Str("view", v.Name()).
			Str("base_table", v.baseTable).
			Msg("materialized view base table missing from schema snapshot")
	}
	return base
}

// table returns the column layout of the view.
func (v *View) table() *Table {
	if v == nil {
		return nil
	}
	return v.inner
}

// ColumnCount returns the number of view columns.
func (v *View) ColumnCount() int {
	return v.table().ColumnCount()
}

// Column returns the i-th view column in positional layout order, or nil.
func (v *View) Column(i int) *Column {
	return v.table().Column(i)
}

// ColumnByName returns the named view column, or nil.
func (v *View) ColumnByName(name string) *Column {
	return v.table().ColumnByName(name)
}

// PartitionKeyCount returns the number of view partition key components.
func (v *View) PartitionKeyCount() int {
	return v.table().PartitionKeyCount()
}

// PartitionKey returns the i-th view partition key component, or nil.
func (v *View) PartitionKey(i int) *Column {
	return v.table().PartitionKey(i)
}

// ClusteringKeyCount returns the number of view clustering key components.
func (v *View) ClusteringKeyCount() int {
	return v.table().ClusteringKeyCount()
}

// ClusteringKey returns the i-th view clustering key component, or nil.
func (v *View) ClusteringKey(i int) *Column {
	return v.table().ClusteringKey(i)
}
