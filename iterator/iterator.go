package iterator

import (
	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/meta"
	"github.com/cqlbridge/sdk/result"
	"github.com/cqlbridge/sdk/value"
)

// Type identifies what an iterator walks, and therefore which accessors
// apply to it.
type Type int

const (
	TypeResult Type = iota
	TypeRow
	TypeCollection
	TypeMap
	TypeTuple
	TypeUserTypeField
	TypeKeyspaceMeta
	TypeTableMeta
	TypeUserTypeMeta
	TypeMaterializedViewMeta
	TypeColumnMeta
)

var typeNames = map[Type]string{
	TypeResult:               "RESULT",
	TypeRow:                  "ROW",
	TypeCollection:           "COLLECTION",
	TypeMap:                  "MAP",
	TypeTuple:                "TUPLE",
	TypeUserTypeField:        "USER_TYPE_FIELD",
	TypeKeyspaceMeta:         "KEYSPACE_META",
	TypeTableMeta:            "TABLE_META",
	TypeUserTypeMeta:         "USER_TYPE_META",
	TypeMaterializedViewMeta: "MATERIALIZED_VIEW_META",
	TypeColumnMeta:           "COLUMN_META",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Iterator is a forward-only cursor over one iterable shape. The zero value
// is not usable; build iterators with the From constructors, which return
// nil when the input does not have the requested shape.
type Iterator struct {
	kind Type
	cur  cursor
}

// FromResult iterates the rows of a result. A non-rows result iterates
// nothing.
func FromResult(res *result.Result) *Iterator {
	if res == nil {
		return nil
	}
	return &Iterator{kind: TypeResult, cur: &resultCursor{res: res, pos: -1}}
}

// FromRow iterates the column values of a row.
func FromRow(row *result.Row) *Iterator {
	if row == nil {
		return nil
	}
	return &Iterator{kind: TypeRow, cur: &rowCursor{row: row, pos: -1}}
}

// FromCollection iterates the elements of a non-null list, set, or map
// value. A map is flattened: entry i yields its key at position 2i and its
// value at position 2i+1.
func FromCollection(v *value.Value) *Iterator {
	cur := flattenedCursor(v)
	if cur == nil {
		return nil
	}
	return &Iterator{kind: TypeCollection, cur: cur}
}

// FromMap iterates the entries of a non-null map value, one entry per step.
func FromMap(v *value.Value) *Iterator {
	if v.Type() != datatype.ValueTypeMap {
		return nil
	}
	inner := flattenedCursor(v)
	if inner == nil {
		return nil
	}
	return &Iterator{kind: TypeMap, cur: &mapCursor{inner: inner}}
}

// flattenedCursor builds the element cursor shared by FromCollection and
// FromMap, or nil when the value is not an iterable non-null collection.
func flattenedCursor(v *value.Value) *cellCursor {
	if v.IsNull() {
		return nil
	}
	reader, st := v.ElementReader()
	if st != sdk.StatusOK {
		return nil
	}

	dt := v.DataType()
	switch v.Type() {
	case datatype.ValueTypeList, datatype.ValueTypeSet:
		return &cellCursor{
			length: v.ItemCount(),
			typeAt: func(int) *datatype.DataType { return dt.SubType(0) },
			reader: reader,
			pos:    -1,
		}
	case datatype.ValueTypeMap:
		return &cellCursor{
			length: 2 * v.ItemCount(),
			typeAt: func(i int) *datatype.DataType { return dt.SubType(i % 2) },
			reader: reader,
			pos:    -1,
		}
	default:
		return nil
	}
}

// FromTuple iterates the slots of a non-null tuple value. The slot count is
// the declared arity; a truncated tuple reads null for the missing tail.
func FromTuple(v *value.Value) *Iterator {
	if v.Type() != datatype.ValueTypeTuple || v.IsNull() {
		return nil
	}
	reader, st := v.ElementReader()
	if st != sdk.StatusOK {
		return nil
	}
	dt := v.DataType()
	return &Iterator{kind: TypeTuple, cur: &cellCursor{
		length:      dt.SubTypeCount(),
		typeAt:      dt.SubType,
		reader:      reader,
		nullPastEnd: true,
		pos:         -1,
	}}
}

// FieldsFromUserType iterates the fields of a non-null user-defined type
// value in declaration order.
func FieldsFromUserType(v *value.Value) *Iterator {
	if v.Type() != datatype.ValueTypeUDT || v.IsNull() {
		return nil
	}
	reader, st := v.ElementReader()
	if st != sdk.StatusOK {
		return nil
	}
	return &Iterator{kind: TypeUserTypeField, cur: &udtCursor{
		dt:     v.DataType(),
		reader: reader,
		pos:    -1,
	}}
}

// KeyspacesFromSchema iterates the keyspaces of a schema snapshot.
func KeyspacesFromSchema(s *meta.Schema) *Iterator {
	if s == nil {
		return nil
	}
	return &Iterator{kind: TypeKeyspaceMeta, cur: &keyspacesCursor{schema: s, pos: -1}}
}

// TablesFromKeyspace iterates the tables of a keyspace.
func TablesFromKeyspace(ks *meta.Keyspace) *Iterator {
	if ks == nil {
		return nil
	}
	return &Iterator{kind: TypeTableMeta, cur: &tablesCursor{ks: ks, pos: -1}}
}

// UserTypesFromKeyspace iterates the user-defined types of a keyspace.
func UserTypesFromKeyspace(ks *meta.Keyspace) *Iterator {
	if ks == nil {
		return nil
	}
	return &Iterator{kind: TypeUserTypeMeta, cur: &userTypesCursor{ks: ks, pos: -1}}
}

// MaterializedViewsFromKeyspace iterates every materialized view of a
// keyspace.
func MaterializedViewsFromKeyspace(ks *meta.Keyspace) *Iterator {
	if ks == nil {
		return nil
	}
	return &Iterator{kind: TypeMaterializedViewMeta, cur: &viewsCursor{ks: ks, pos: -1}}
}

// MaterializedViewsFromTable iterates the materialized views built from one
// table.
func MaterializedViewsFromTable(t *meta.Table) *Iterator {
	if t == nil {
		return nil
	}
	return &Iterator{kind: TypeMaterializedViewMeta, cur: &viewsCursor{tbl: t, pos: -1}}
}

// ColumnsFromTable iterates the columns of a table in positional layout
// order.
func ColumnsFromTable(t *meta.Table) *Iterator {
	if t == nil {
		return nil
	}
	return &Iterator{kind: TypeColumnMeta, cur: &columnsCursor{tbl: t, pos: -1}}
}

// ColumnsFromView iterates the columns of a materialized view in positional
// layout order.
func ColumnsFromView(v *meta.View) *Iterator {
	if v == nil {
		return nil
	}
	return &Iterator{kind: TypeColumnMeta, cur: &columnsCursor{vw: v, pos: -1}}
}

// Type returns the iterator shape.
func (it *Iterator) Type() Type {
	if it == nil {
		return Type(-1)
	}
	return it.kind
}

// Next attempts to advance to the next element. Once it returns false it
// returns false forever.
func (it *Iterator) Next() bool {
	if it == nil || it.cur == nil {
		return false
	}
	return it.cur.next()
}

// Free detaches the iterator from whatever it borrows. Safe on nil.
func (it *Iterator) Free() {
	if it == nil {
		return
	}
	it.cur = nil
}

// Row returns the current row of a result iterator, or nil before the first
// Next, after the end, or on any other iterator shape.
func (it *Iterator) Row() *result.Row {
	c, ok := cursorAs[*resultCursor](it)
	if !ok {
		return nil
	}
	return c.row
}

// Column returns the current value of a row iterator.
func (it *Iterator) Column() *value.Value {
	c, ok := cursorAs[*rowCursor](it)
	if !ok {
		return nil
	}
	return c.column()
}

// Value returns the current element of a collection or tuple iterator.
func (it *Iterator) Value() *value.Value {
	c, ok := cursorAs[*cellCursor](it)
	if !ok {
		return nil
	}
	return c.cur
}

// MapKey returns the key of the current entry of a map iterator.
func (it *Iterator) MapKey() *value.Value {
	c, ok := cursorAs[*mapCursor](it)
	if !ok {
		return nil
	}
	return c.key
}

// MapValue returns the value of the current entry of a map iterator.
func (it *Iterator) MapValue() *value.Value {
	c, ok := cursorAs[*mapCursor](it)
	if !ok {
		return nil
	}
	return c.val
}

// UserTypeFieldName returns the name of the current field of a user-defined
// type iterator, and sdk.StatusBadParams on any other shape or when the
// iterator is not positioned on a field.
func (it *Iterator) UserTypeFieldName() (string, sdk.Status) {
	c, ok := cursorAs[*udtCursor](it)
	if !ok || c.cur == nil {
		return "", sdk.StatusBadParams
	}
	return c.name, sdk.StatusOK
}

// UserTypeFieldValue returns the value of the current field of a
// user-defined type iterator.
func (it *Iterator) UserTypeFieldValue() *value.Value {
	c, ok := cursorAs[*udtCursor](it)
	if !ok {
		return nil
	}
	return c.cur
}

// KeyspaceMeta returns the current keyspace of a keyspace iterator.
func (it *Iterator) KeyspaceMeta() *meta.Keyspace {
	c, ok := cursorAs[*keyspacesCursor](it)
	if !ok {
		return nil
	}
	return c.keyspace()
}

// TableMeta returns the current table of a table iterator.
func (it *Iterator) TableMeta() *meta.Table {
	c, ok := cursorAs[*tablesCursor](it)
	if !ok {
		return nil
	}
	return c.table()
}

// UserTypeMeta returns the current type of a user-defined type metadata
// iterator.
func (it *Iterator) UserTypeMeta() *datatype.DataType {
	c, ok := cursorAs[*userTypesCursor](it)
	if !ok {
		return nil
	}
	return c.userType()
}

// MaterializedViewMeta returns the current view of a materialized view
// iterator.
func (it *Iterator) MaterializedViewMeta() *meta.View {
	c, ok := cursorAs[*viewsCursor](it)
	if !ok {
		return nil
	}
	return c.view()
}

// ColumnMeta returns the current column of a column metadata iterator.
func (it *Iterator) ColumnMeta() *meta.Column {
	c, ok := cursorAs[*columnsCursor](it)
	if !ok {
		return nil
	}
	return c.column()
}

// cursorAs extracts the concrete cursor behind an iterator, tolerating nil
// and freed iterators.
func cursorAs[C cursor](it *Iterator) (C, bool) {
	var zero C
	if it == nil || it.cur == nil {
		return zero, false
	}
	c, ok := it.cur.(C)
	return c, ok
}
