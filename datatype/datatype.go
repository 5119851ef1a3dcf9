package datatype

// ValueType identifies a CQL type. It is the tag reported for columns,
// values, and sub-types across the SDK.
type ValueType int

const (
	ValueTypeUnknown ValueType = iota
	ValueTypeCustom
	ValueTypeAscii
	ValueTypeBigInt
	ValueTypeBlob
	ValueTypeBoolean
	ValueTypeCounter
	ValueTypeDecimal
	ValueTypeDouble
	ValueTypeFloat
	ValueTypeInt
	ValueTypeText
	ValueTypeTimestamp
	ValueTypeUUID
	ValueTypeVarchar
	ValueTypeVarint
	ValueTypeTimeUUID
	ValueTypeInet
	ValueTypeDate
	ValueTypeTime
	ValueTypeSmallInt
	ValueTypeTinyInt
	ValueTypeDuration
	ValueTypeList
	ValueTypeMap
	ValueTypeSet
	ValueTypeUDT
	ValueTypeTuple
)

var valueTypeNames = map[ValueType]string{
	ValueTypeUnknown:   "UNKNOWN",
	ValueTypeCustom:    "CUSTOM",
	ValueTypeAscii:     "ASCII",
	ValueTypeBigInt:    "BIGINT",
	ValueTypeBlob:      "BLOB",
	ValueTypeBoolean:   "BOOLEAN",
	ValueTypeCounter:   "COUNTER",
	ValueTypeDecimal:   "DECIMAL",
	ValueTypeDouble:    "DOUBLE",
	ValueTypeFloat:     "FLOAT",
	ValueTypeInt:       "INT",
	ValueTypeText:      "TEXT",
	ValueTypeTimestamp: "TIMESTAMP",
	ValueTypeUUID:      "UUID",
	ValueTypeVarchar:   "VARCHAR",
	ValueTypeVarint:    "VARINT",
	ValueTypeTimeUUID:  "TIMEUUID",
	ValueTypeInet:      "INET",
	ValueTypeDate:      "DATE",
	ValueTypeTime:      "TIME",
	ValueTypeSmallInt:  "SMALLINT",
	ValueTypeTinyInt:   "TINYINT",
	ValueTypeDuration:  "DURATION",
	ValueTypeList:      "LIST",
	ValueTypeMap:       "MAP",
	ValueTypeSet:       "SET",
	ValueTypeUDT:       "UDT",
	ValueTypeTuple:     "TUPLE",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// UDTField is a single named field of a user-defined type, in declaration
// order.
type UDTField struct {
	Name string
	Type *DataType
}

// DataType is a resolved CQL type descriptor. For collections it carries the
// element types, for tuples the slot types, for user-defined types the
// ordered field list. Immutable after construction.
type DataType struct {
	kind   ValueType
	frozen bool

	// elem is the element type for lists and sets.
	elem *DataType

	// key and value are the entry types for maps.
	key   *DataType
	value *DataType

	// elems are the slot types for tuples.
	elems []*DataType

	// keyspace, name, and fields describe user-defined types.
	keyspace string
	name     string
	fields   []UDTField

	// class is the Java class name for custom types.
	class string
}

// NewPrimitive returns a descriptor for a non-container type.
func NewPrimitive(kind ValueType) *DataType {
	return &DataType{kind: kind}
}

// NewList returns a list descriptor with the given element type.
func NewList(elem *DataType, frozen bool) *DataType {
	return &DataType{kind: ValueTypeList, elem: elem, frozen: frozen}
}

// NewSet returns a set descriptor with the given element type.
func NewSet(elem *DataType, frozen bool) *DataType {
	return &DataType{kind: ValueTypeSet, elem: elem, frozen: frozen}
}

// NewMap returns a map descriptor with the given key and value types.
func NewMap(key, value *DataType, frozen bool) *DataType {
	return &DataType{kind: ValueTypeMap, key: key, value: value, frozen: frozen}
}

// NewTuple returns a tuple descriptor with the given slot types.
func NewTuple(elems ...*DataType) *DataType {
	return &DataType{kind: ValueTypeTuple, elems: elems}
}

// NewUDT returns a user-defined type descriptor with ordered fields.
func NewUDT(keyspace, name string, frozen bool, fields ...UDTField) *DataType {
	return &DataType{
		kind:     ValueTypeUDT,
		keyspace: keyspace,
		name:     name,
		frozen:   frozen,
		fields:   fields,
	}
}

// NewCustom returns a descriptor for a custom type with its class name.
func NewCustom(class string) *DataType {
	return &DataType{kind: ValueTypeCustom, class: class}
}

// Type reports the type tag. Returns ValueTypeUnknown for a nil descriptor.
func (dt *DataType) Type() ValueType {
	if dt == nil {
		return ValueTypeUnknown
	}
	return dt.kind
}

// IsFrozen reports whether the container type is frozen.
func (dt *DataType) IsFrozen() bool {
	return dt != nil && dt.frozen
}

// IsCollection reports whether the type is a list, set, or map.
func (dt *DataType) IsCollection() bool {
	switch dt.Type() {
	case ValueTypeList, ValueTypeSet, ValueTypeMap:
		return true
	default:
		return false
	}
}

// SubType returns the i-th sub-type: element type for lists and sets (i=0),
// key (i=0) and value (i=1) for maps, the i-th slot for tuples. Nil for
// anything else or out of range.
func (dt *DataType) SubType(i int) *DataType {
	if dt == nil {
		return nil
	}
	switch dt.kind {
	case ValueTypeList, ValueTypeSet:
		if i == 0 {
			return dt.elem
		}
	case ValueTypeMap:
		switch i {
		case 0:
			return dt.key
		case 1:
			return dt.value
		}
	case ValueTypeTuple:
		if i >= 0 && i < len(dt.elems) {
			return dt.elems[i]
		}
	case ValueTypeUDT:
		if i >= 0 && i < len(dt.fields) {
			return dt.fields[i].Type
		}
	}
	return nil
}

// SubTypeCount returns the number of sub-types: 1 for lists and sets, 2 for
// maps, the arity for tuples, and the field count for user-defined types.
func (dt *DataType) SubTypeCount() int {
	if dt == nil {
		return 0
	}
	switch dt.kind {
	case ValueTypeList, ValueTypeSet:
		return 1
	case ValueTypeMap:
		return 2
	case ValueTypeTuple:
		return len(dt.elems)
	case ValueTypeUDT:
		return len(dt.fields)
	default:
		return 0
	}
}

// Keyspace returns the defining keyspace of a user-defined type.
func (dt *DataType) Keyspace() string {
	if dt == nil {
		return ""
	}
	return dt.keyspace
}

// Name returns the type name of a user-defined type.
func (dt *DataType) Name() string {
	if dt == nil {
		return ""
	}
	return dt.name
}

// ClassName returns the Java class name of a custom type.
func (dt *DataType) ClassName() string {
	if dt == nil {
		return ""
	}
	return dt.class
}

// Field returns the i-th field of a user-defined type, in declaration order.
func (dt *DataType) Field(i int) (UDTField, bool) {
	if dt == nil || dt.kind != ValueTypeUDT || i < 0 || i >= len(dt.fields) {
		return UDTField{}, false
	}
	return dt.fields[i], true
}

// FieldByName returns the named field of a user-defined type.
func (dt *DataType) FieldByName(name string) (UDTField, bool) {
	if dt == nil || dt.kind != ValueTypeUDT {
		return UDTField{}, false
	}
	for _, f := range dt.fields {
		if f.Name == name {
			return f, true
		}
	}
	return UDTField{}, false
}
