package gocqlsource

import (
	"fmt"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/cqlbridge/sdk/datatype"
)

var nativeTypes = map[gocql.Type]datatype.ValueType{
	gocql.TypeAscii:     datatype.ValueTypeAscii,
	gocql.TypeBigInt:    datatype.ValueTypeBigInt,
	gocql.TypeBlob:      datatype.ValueTypeBlob,
	gocql.TypeBoolean:   datatype.ValueTypeBoolean,
	gocql.TypeCounter:   datatype.ValueTypeCounter,
	gocql.TypeDecimal:   datatype.ValueTypeDecimal,
	gocql.TypeDouble:    datatype.ValueTypeDouble,
	gocql.TypeFloat:     datatype.ValueTypeFloat,
	gocql.TypeInt:       datatype.ValueTypeInt,
	gocql.TypeText:      datatype.ValueTypeText,
	gocql.TypeTimestamp: datatype.ValueTypeTimestamp,
	gocql.TypeUUID:      datatype.ValueTypeUUID,
	gocql.TypeVarchar:   datatype.ValueTypeVarchar,
	gocql.TypeVarint:    datatype.ValueTypeVarint,
	gocql.TypeTimeUUID:  datatype.ValueTypeTimeUUID,
	gocql.TypeInet:      datatype.ValueTypeInet,
	gocql.TypeDate:      datatype.ValueTypeDate,
	gocql.TypeTime:      datatype.ValueTypeTime,
	gocql.TypeSmallInt:  datatype.ValueTypeSmallInt,
	gocql.TypeTinyInt:   datatype.ValueTypeTinyInt,
	gocql.TypeDuration:  datatype.ValueTypeDuration,
}

// ConvertType resolves a gocql type descriptor into the SDK's full type
// descriptor, recursing through collections, tuples, and user-defined
// types. Unrecognized types map to ValueTypeUnknown rather than failing.
func ConvertType(info gocql.TypeInfo) *datatype.DataType {
	if info == nil {
		return nil
	}

	switch t := info.(type) {
	case gocql.CollectionType:
		switch t.Type() {
		case gocql.TypeList:
			return datatype.NewList(ConvertType(t.Elem), false)
		case gocql.TypeSet:
			return datatype.NewSet(ConvertType(t.Elem), false)
		case gocql.TypeMap:
			return datatype.NewMap(ConvertType(t.Key), ConvertType(t.Elem), false)
		}
	case gocql.TupleTypeInfo:
		elems := make([]*datatype.DataType, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = ConvertType(e)
		}
		return datatype.NewTuple(elems...)
	case gocql.UDTTypeInfo:
		fields := make([]datatype.UDTField, len(t.Elements))
		for i, f := range t.Elements {
			fields[i] = datatype.UDTField{Name: f.Name, Type: ConvertType(f.Type)}
		}
		return datatype.NewUDT(t.Keyspace, t.Name, false, fields...)
	}

	if info.Type() == gocql.TypeCustom {
		// the class name is only reachable through the type's string form
		if s, ok := info.(fmt.Stringer); ok {
			return datatype.NewCustom(s.String())
		}
		return datatype.NewCustom("")
	}
	if kind, ok := nativeTypes[info.Type()]; ok {
		return datatype.NewPrimitive(kind)
	}
	return datatype.NewPrimitive(datatype.ValueTypeUnknown)
}
