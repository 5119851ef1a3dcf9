package meta

import (
	"sort"

	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
)

// Schema is a point-in-time snapshot of the cluster schema.
type Schema struct {
	keyspaces map[string]*Keyspace
	names     []string
}

// NewSchema builds a snapshot from driver keyspace descriptors.
func NewSchema(keyspaces []driver.KeyspaceDesc) *Schema {
	s := &Schema{keyspaces: make(map[string]*Keyspace, len(keyspaces))}
	for _, desc := range keyspaces {
		ks := newKeyspace(desc)
		s.keyspaces[ks.name] = ks
		s.names = append(s.names, ks.name)
	}
	sort.Strings(s.names)
	return s
}

// KeyspaceCount returns the number of keyspaces in the snapshot.
func (s *Schema) KeyspaceCount() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// KeyspaceAt returns the i-th keyspace in name order, or nil.
func (s *Schema) KeyspaceAt(i int) *Keyspace {
	if s == nil || i < 0 || i >= len(s.names) {
		return nil
	}
	return s.keyspaces[s.names[i]]
}

// Keyspace returns the named keyspace, or nil.
func (s *Schema) Keyspace(name string) *Keyspace {
	if s == nil {
		return nil
	}
	return s.keyspaces[name]
}

// Free drops the snapshot. Accessors on a freed schema report emptiness.
func (s *Schema) Free() {
	if s == nil {
		return
	}
	s.keyspaces = nil
	s.names = nil
}

// Keyspace is the schema of one keyspace.
type Keyspace struct {
	name string

	tables     map[string]*Table
	tableNames []string

	views     map[string]*View
	viewNames []string

	userTypes     map[string]*datatype.DataType
	userTypeNames []string
}

func newKeyspace(desc driver.KeyspaceDesc) *Keyspace {
	ks := &Keyspace{
		name:      desc.Name,
		tables:    make(map[string]*Table, len(desc.Tables)),
		views:     make(map[string]*View, len(desc.Views)),
		userTypes: make(map[string]*datatype.DataType, len(desc.UserTypes)),
	}

	for _, t := range desc.Tables {
		table := newTable(t.Name, t.Columns, t.PartitionKeys, t.ClusteringKeys)
		ks.tables[table.name] = table
		ks.tableNames = append(ks.tableNames, table.name)
	}
	sort.Strings(ks.tableNames)

	for _, v := range desc.Views {
		view := &View{
			keyspace:  ks,
			baseTable: v.BaseTable,
			inner:     newTable(v.Name, v.Columns, v.PartitionKeys, v.ClusteringKeys),
		}
		ks.views[v.Name] = view
		ks.viewNames = append(ks.viewNames, v.Name)
		if base, ok := ks.tables[v.BaseTable]; ok {
			base.views[v.Name] = view
			base.viewNames = append(base.viewNames, v.Name)
		}
	}
	sort.Strings(ks.viewNames)
	for _, t := range ks.tables {
		sort.Strings(t.viewNames)
	}

	for _, ut := range desc.UserTypes {
		dt := datatype.NewUDT(desc.Name, ut.Name, true, ut.Fields...)
		ks.userTypes[ut.Name] = dt
		ks.userTypeNames = append(ks.userTypeNames, ut.Name)
	}
	sort.Strings(ks.userTypeNames)

	return ks
}

// Name returns the keyspace name.
func (ks *Keyspace) Name() string {
	if ks == nil {
		return ""
	}
	return ks.name
}

// TableCount returns the number of tables.
func (ks *Keyspace) TableCount() int {
	if ks == nil {
		return 0
	}
	return len(ks.tableNames)
}

// TableAt returns the i-th table in name order, or nil.
func (ks *Keyspace) TableAt(i int) *Table {
	if ks == nil || i < 0 || i >= len(ks.tableNames) {
		return nil
	}
	return ks.tables[ks.tableNames[i]]
}

// Table returns the named table, or nil.
func (ks *Keyspace) Table(name string) *Table {
	if ks == nil {
		return nil
	}
	return ks.tables[name]
}

// ViewCount returns the number of materialized views in the keyspace.
func (ks *Keyspace) ViewCount() int {
	if ks == nil {
		return 0
	}
	return len(ks.viewNames)
}

// ViewAt returns the i-th materialized view in name order, or nil.
func (ks *Keyspace) ViewAt(i int) *View {
	if ks == nil || i < 0 || i >= len(ks.viewNames) {
		return nil
	}
	return ks.views[ks.viewNames[i]]
}

// View returns the named materialized view, or nil.
func (ks *Keyspace) View(name string) *View {
	if ks == nil {
		return nil
	}
	return ks.views[name]
}

// UserTypeCount returns the number of user-defined types.
func (ks *Keyspace) UserTypeCount() int {
	if ks == nil {
		return 0
	}
	return len(ks.userTypeNames)
}

// UserTypeAt returns the i-th user-defined type in name order, or nil.
func (ks *Keyspace) UserTypeAt(i int) *datatype.DataType {
	if ks == nil || i < 0 || i >= len(ks.userTypeNames) {
		return nil
	}
	return ks.userTypes[ks.userTypeNames[i]]
}

// UserType returns the named user-defined type, or nil.
func (ks *Keyspace) UserType(name string) *datatype.DataType {
	if ks == nil {
		return nil
	}
	return ks.userTypes[name]
}
