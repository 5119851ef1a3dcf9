package iterator

import (
	"encoding/binary"
	"testing"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
	"github.com/cqlbridge/sdk/driver/mock"
	"github.com/cqlbridge/sdk/meta"
	"github.com/cqlbridge/sdk/result"
	"github.com/cqlbridge/sdk/value"
)

var (
	intType  = datatype.NewPrimitive(datatype.ValueTypeInt)
	textType = datatype.NewPrimitive(datatype.ValueTypeText)
)

func be32(v uint32) []byte { return binary.BigEndian.AppendUint32(nil, v) }

func appendCell(buf, cell []byte) []byte {
	if cell == nil {
		return binary.BigEndian.AppendUint32(buf, 0xffffffff)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(cell)))
	return append(buf, cell...)
}

// containerCell serializes a collection body with an explicit entry count.
func containerCell(count int, cells ...[]byte) []byte {
	buf := binary.BigEndian.AppendUint32(nil, uint32(count))
	for _, c := range cells {
		buf = appendCell(buf, c)
	}
	return buf
}

func mustValue(t *testing.T, dt *datatype.DataType, cell []byte) *value.Value {
	t.Helper()
	v, err := value.New(dt, cell)
	if err != nil {
		t.Fatalf("value.New returned unexpected error - %s", err)
	}
	return v
}

func numbersResult(t *testing.T, rows [][][]byte) *result.Result {
	t.Helper()
	res, err := result.New(result.Config{Source: mock.New(mock.Config{
		Response: func() driver.RawResult {
			return driver.RawResult{
				IsRows:  true,
				Columns: []driver.ColumnSpec{{Name: "n", Type: intType}},
				Rows:    rows,
			}
		},
	})})
	if err != nil {
		t.Fatalf("result.New returned unexpected error - %s", err)
	}
	return res
}

func TestIterator_Result(t *testing.T) {
	t.Parallel()

	res := numbersResult(t, [][][]byte{{be32(1)}, {be32(2)}, {be32(3)}})
	defer res.Free()

	it := FromResult(res)
	if got := it.Type(); got != TypeResult {
		t.Fatalf("Type() = %s, want RESULT", got)
	}
	if it.Row() != nil {
		t.Error("Row() != nil before the first Next")
	}

	var got []int32
	for it.Next() {
		n, st := it.Row().Column(0).Int32()
		if st != sdk.StatusOK {
			t.Fatalf("Int32() status = %s, want OK", st)
		}
		got = append(got, n)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("iterated %v, want [1 2 3]", got)
	}

	// exhausted iterators stay exhausted
	for i := 0; i < 3; i++ {
		if it.Next() {
			t.Fatal("Next() = true after the end")
		}
	}
	if it.Row() != nil {
		t.Error("Row() != nil after the end")
	}
}

func TestIterator_ResultStopsOnBadRow(t *testing.T) {
	t.Parallel()

	listType := datatype.NewList(textType, false)
	res, err := result.New(result.Config{Source: mock.New(mock.Config{
		Response: func() driver.RawResult {
			return driver.RawResult{
				IsRows:  true,
				Columns: []driver.ColumnSpec{{Name: "tags", Type: listType}},
				Rows: [][][]byte{
					{containerCell(1, []byte("ok"))},
					{{0x00, 0x01}}, // truncated collection header
					{containerCell(1, []byte("unreachable"))},
				},
			}
		},
	})})
	if err != nil {
		t.Fatalf("result.New returned unexpected error - %s", err)
	}
	defer res.Free()

	it := FromResult(res)
	if !it.Next() {
		t.Fatal("Next() = false on the first, valid row")
	}
	if it.Next() {
		t.Fatal("Next() = true on an undecodable row")
	}
	if it.Row() != nil {
		t.Error("Row() != nil after a failed advance")
	}
	if it.Next() {
		t.Error("Next() = true after a failed advance")
	}
}

func TestIterator_Row(t *testing.T) {
	t.Parallel()

	res, err := result.New(result.Config{Source: mock.New(mock.Config{
		Response: func() driver.RawResult {
			return driver.RawResult{
				IsRows: true,
				Columns: []driver.ColumnSpec{
					{Name: "id", Type: intType},
					{Name: "name", Type: textType},
				},
				Rows: [][][]byte{{be32(7), []byte("kim")}},
			}
		},
	})})
	if err != nil {
		t.Fatalf("result.New returned unexpected error - %s", err)
	}
	defer res.Free()

	it := FromRow(res.FirstRow())
	if it.Column() != nil {
		t.Error("Column() != nil before the first Next")
	}
	if !it.Next() {
		t.Fatal("Next() = false on the first column")
	}
	if n, st := it.Column().Int32(); st != sdk.StatusOK || n != 7 {
		t.Errorf("column 0 = (%d, %s), want (7, OK)", n, st)
	}
	if !it.Next() {
		t.Fatal("Next() = false on the second column")
	}
	if s, st := it.Column().Text(); st != sdk.StatusOK || s != "kim" {
		t.Errorf("column 1 = (%q, %s), want (kim, OK)", s, st)
	}
	if it.Next() {
		t.Error("Next() = true past the last column")
	}
}

func TestIterator_Collection(t *testing.T) {
	t.Parallel()

	t.Run("list with a null element", func(t *testing.T) {
		list := mustValue(t, datatype.NewList(intType, false),
			containerCell(3, be32(10), nil, be32(30)))

		it := FromCollection(list)
		if it == nil {
			t.Fatal("FromCollection returned nil for a list")
		}

		var got []int32
		var nulls int
		for it.Next() {
			if it.Value().IsNull() {
				nulls++
				continue
			}
			n, _ := it.Value().Int32()
			got = append(got, n)
		}
		if nulls != 1 || len(got) != 2 || got[0] != 10 || got[1] != 30 {
			t.Errorf("iterated %v with %d nulls, want [10 30] with 1 null", got, nulls)
		}
	})

	t.Run("flattened map alternates key and value", func(t *testing.T) {
		m := mustValue(t, datatype.NewMap(intType, textType, false),
			containerCell(3,
				be32(1), []byte("one"),
				be32(2), []byte("two"),
				be32(3), []byte("three")))

		it := FromCollection(m)
		var kinds []datatype.ValueType
		for it.Next() {
			kinds = append(kinds, it.Value().Type())
		}
		if len(kinds) != 6 {
			t.Fatalf("iterated %d positions, want 6", len(kinds))
		}
		for i, k := range kinds {
			want := datatype.ValueTypeInt
			if i%2 == 1 {
				want = datatype.ValueTypeText
			}
			if k != want {
				t.Errorf("position %d type = %s, want %s", i, k, want)
			}
		}
	})

	t.Run("rejects non-collections and null", func(t *testing.T) {
		if FromCollection(mustValue(t, intType, be32(1))) != nil {
			t.Error("FromCollection accepted a scalar")
		}
		if FromCollection(mustValue(t, datatype.NewList(intType, false), nil)) != nil {
			t.Error("FromCollection accepted a null collection")
		}
		if FromCollection(nil) != nil {
			t.Error("FromCollection accepted nil")
		}
	})

	t.Run("stops on malformed element", func(t *testing.T) {
		// count says two elements, body holds one and a truncated header
		body := containerCell(2, be32(1))
		body = append(body, 0x00)
		list := mustValue(t, datatype.NewList(intType, false), body)

		it := FromCollection(list)
		if !it.Next() {
			t.Fatal("Next() = false on the valid element")
		}
		if it.Next() {
			t.Fatal("Next() = true on a malformed element")
		}
		if it.Value() != nil {
			t.Error("Value() != nil after a failed advance")
		}
		if it.Next() {
			t.Error("Next() = true after a failed advance")
		}
	})
}

func TestIterator_Map(t *testing.T) {
	t.Parallel()

	m := mustValue(t, datatype.NewMap(textType, intType, false),
		containerCell(2,
			[]byte("a"), be32(1),
			[]byte("b"), be32(2)))

	it := FromMap(m)
	if it == nil {
		t.Fatal("FromMap returned nil for a map")
	}
	if it.MapKey() != nil || it.MapValue() != nil {
		t.Error("map entry accessors returned values before the first Next")
	}

	entries := map[string]int32{}
	for it.Next() {
		k, st := it.MapKey().Text()
		if st != sdk.StatusOK {
			t.Fatalf("MapKey().Text() status = %s", st)
		}
		v, st := it.MapValue().Int32()
		if st != sdk.StatusOK {
			t.Fatalf("MapValue().Int32() status = %s", st)
		}
		entries[k] = v
	}
	if len(entries) != 2 || entries["a"] != 1 || entries["b"] != 2 {
		t.Errorf("iterated %v, want map[a:1 b:2]", entries)
	}

	if FromMap(mustValue(t, datatype.NewList(intType, false), containerCell(0))) != nil {
		t.Error("FromMap accepted a list")
	}
}

func TestIterator_Tuple(t *testing.T) {
	t.Parallel()

	tuple := datatype.NewTuple(intType, textType, intType)

	t.Run("truncated tuple reads null tail", func(t *testing.T) {
		body := appendCell(nil, be32(42))
		v := mustValue(t, tuple, body)

		it := FromTuple(v)
		if !it.Next() {
			t.Fatal("Next() = false on slot 0")
		}
		if n, st := it.Value().Int32(); st != sdk.StatusOK || n != 42 {
			t.Errorf("slot 0 = (%d, %s), want (42, OK)", n, st)
		}
		if !it.Next() || !it.Value().IsNull() {
			t.Error("slot 1 should read as null")
		}
		if !it.Next() || !it.Value().IsNull() {
			t.Error("slot 2 should read as null")
		}
		if it.Next() {
			t.Error("Next() = true past the arity")
		}
	})

	t.Run("rejects non-tuples", func(t *testing.T) {
		if FromTuple(mustValue(t, intType, be32(1))) != nil {
			t.Error("FromTuple accepted a scalar")
		}
	})
}

func TestIterator_UserTypeFields(t *testing.T) {
	t.Parallel()

	address := datatype.NewUDT("store", "address", true,
		datatype.UDTField{Name: "street", Type: textType},
		datatype.UDTField{Name: "zip", Type: intType},
	)
	body := appendCell(nil, []byte("5th avenue"))
	v := mustValue(t, address, body)

	it := FieldsFromUserType(v)
	if it == nil {
		t.Fatal("FieldsFromUserType returned nil")
	}
	if _, st := it.UserTypeFieldName(); st != sdk.StatusBadParams {
		t.Errorf("UserTypeFieldName() status = %s before the first Next, want BAD_PARAMS", st)
	}

	if !it.Next() {
		t.Fatal("Next() = false on the first field")
	}
	name, st := it.UserTypeFieldName()
	if st != sdk.StatusOK || name != "street" {
		t.Errorf("field 0 name = (%q, %s), want (street, OK)", name, st)
	}
	if s, st := it.UserTypeFieldValue().Text(); st != sdk.StatusOK || s != "5th avenue" {
		t.Errorf("field 0 = (%q, %s)", s, st)
	}

	// zip was not serialized, it reads as null
	if !it.Next() {
		t.Fatal("Next() = false on the truncated field")
	}
	if name, _ := it.UserTypeFieldName(); name != "zip" {
		t.Errorf("field 1 name = %q, want zip", name)
	}
	if !it.UserTypeFieldValue().IsNull() {
		t.Error("field 1 should read as null")
	}
	if it.Next() {
		t.Error("Next() = true past the field count")
	}
}

func schemaFixture() *meta.Schema {
	return meta.NewSchema([]driver.KeyspaceDesc{
		{
			Name: "store",
			Tables: []driver.TableDesc{
				{
					Name: "orders",
					Columns: []driver.ColumnDesc{
						{Name: "customer", Type: intType, Kind: driver.ColumnPartitionKey},
						{Name: "total", Type: intType, Kind: driver.ColumnRegular},
						{Name: "note", Type: textType, Kind: driver.ColumnRegular},
					},
					PartitionKeys: []string{"customer"},
				},
				{Name: "audit"},
			},
			Views: []driver.ViewDesc{
				{Name: "orders_by_total", BaseTable: "orders"},
			},
			UserTypes: []driver.UserTypeDesc{
				{Name: "address"},
			},
		},
		{Name: "analytics"},
	})
}

func TestIterator_SchemaMetadata(t *testing.T) {
	t.Parallel()

	schema := schemaFixture()

	t.Run("keyspaces", func(t *testing.T) {
		it := KeyspacesFromSchema(schema)
		var names []string
		for it.Next() {
			names = append(names, it.KeyspaceMeta().Name())
		}
		if len(names) != 2 || names[0] != "analytics" || names[1] != "store" {
			t.Errorf("iterated %v, want [analytics store]", names)
		}
	})

	t.Run("tables", func(t *testing.T) {
		it := TablesFromKeyspace(schema.Keyspace("store"))
		var names []string
		for it.Next() {
			names = append(names, it.TableMeta().Name())
		}
		if len(names) != 2 || names[0] != "audit" || names[1] != "orders" {
			t.Errorf("iterated %v, want [audit orders]", names)
		}
	})

	t.Run("user types", func(t *testing.T) {
		it := UserTypesFromKeyspace(schema.Keyspace("store"))
		if !it.Next() {
			t.Fatal("Next() = false on the only user type")
		}
		if got := it.UserTypeMeta().Name(); got != "address" {
			t.Errorf("UserTypeMeta().Name() = %q, want address", got)
		}
		if it.Next() {
			t.Error("Next() = true past the only user type")
		}
	})

	t.Run("views from keyspace and from table", func(t *testing.T) {
		fromKs := MaterializedViewsFromKeyspace(schema.Keyspace("store"))
		if !fromKs.Next() || fromKs.MaterializedViewMeta().Name() != "orders_by_total" {
			t.Error("keyspace view iteration did not yield orders_by_total")
		}

		fromTable := MaterializedViewsFromTable(schema.Keyspace("store").Table("orders"))
		if !fromTable.Next() || fromTable.MaterializedViewMeta().Name() != "orders_by_total" {
			t.Error("table view iteration did not yield orders_by_total")
		}
		if fromTable.Next() {
			t.Error("Next() = true past the only view")
		}

		empty := MaterializedViewsFromTable(schema.Keyspace("store").Table("audit"))
		if empty.Next() {
			t.Error("Next() = true for a table with no views")
		}
	})

	t.Run("columns follow key layout order", func(t *testing.T) {
		it := ColumnsFromTable(schema.Keyspace("store").Table("orders"))
		var names []string
		for it.Next() {
			names = append(names, it.ColumnMeta().Name())
		}
		if len(names) != 3 || names[0] != "customer" || names[1] != "note" || names[2] != "total" {
			t.Errorf("iterated %v, want [customer note total]", names)
		}
	})

	t.Run("columns from view", func(t *testing.T) {
		it := ColumnsFromView(schema.Keyspace("store").View("orders_by_total"))
		if it == nil {
			t.Fatal("ColumnsFromView returned nil")
		}
		if it.Next() {
			t.Error("Next() = true for a view without columns")
		}
	})
}

func TestIterator_WrongShapeAccessors(t *testing.T) {
	t.Parallel()

	res := numbersResult(t, [][][]byte{{be32(1)}})
	defer res.Free()

	it := FromResult(res)
	it.Next()
	if it.Column() != nil || it.Value() != nil || it.MapKey() != nil ||
		it.KeyspaceMeta() != nil || it.ColumnMeta() != nil {
		t.Error("accessors of other shapes returned values on a result iterator")
	}
	if _, st := it.UserTypeFieldName(); st != sdk.StatusBadParams {
		t.Errorf("UserTypeFieldName() status = %s, want BAD_PARAMS", st)
	}
}

func TestIterator_Free(t *testing.T) {
	t.Parallel()

	res := numbersResult(t, [][][]byte{{be32(1)}, {be32(2)}})
	defer res.Free()

	it := FromResult(res)
	if !it.Next() {
		t.Fatal("Next() = false on the first row")
	}
	it.Free()
	if it.Next() {
		t.Error("Next() = true after Free")
	}
	if it.Row() != nil {
		t.Error("Row() != nil after Free")
	}

	var nilIt *Iterator
	nilIt.Free()
	if nilIt.Next() {
		t.Error("Next() = true on a nil iterator")
	}
}
