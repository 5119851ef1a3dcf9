package value

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
	"net"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
)

// Value is one decoded-on-demand CQL cell together with its declared type.
// Values borrow their bytes from the result page that produced them; they
// stay valid for as long as that result is alive.
type Value struct {
	typ *datatype.DataType
	raw rawValue
}

// New builds a Value from a cell and its declared type. A nil cell is a CQL
// null. New fails only on malformed container headers; scalar bytes are not
// validated until a getter reads them.
func New(dt *datatype.DataType, cell []byte) (*Value, error) {
	raw, err := decodeRaw(dt, cell)
	if err != nil {
		return nil, err
	}
	return &Value{typ: dt, raw: raw}, nil
}

// DataType returns the full declared type of the value.
func (v *Value) DataType() *datatype.DataType {
	if v == nil {
		return nil
	}
	return v.typ
}

// Type returns the type tag of the value.
func (v *Value) Type() datatype.ValueType {
	if v == nil {
		return datatype.ValueTypeUnknown
	}
	return v.typ.Type()
}

// IsNull reports whether the cell is a CQL null. A nil Value is null.
func (v *Value) IsNull() bool {
	return v == nil || v.raw.slice == nil
}

// IsCollection reports whether the value is a list, set, or map.
func (v *Value) IsCollection() bool {
	return v != nil && v.typ.IsCollection()
}

// IsDuration reports whether the value is a CQL duration.
func (v *Value) IsDuration() bool {
	return v != nil && v.typ.Type() == datatype.ValueTypeDuration
}

// ItemCount returns the element count precomputed at construction: the
// serialized entry count for collections, the arity for tuples, the field
// count for user-defined types, and 0 for everything else (null included).
func (v *Value) ItemCount() int {
	if v == nil || !v.raw.hasCount || v.raw.slice == nil {
		return 0
	}
	return v.raw.itemCount
}

// PrimarySubType returns the element type tag for lists and sets and the
// key type tag for maps.
func (v *Value) PrimarySubType() datatype.ValueType {
	if v == nil {
		return datatype.ValueTypeUnknown
	}
	return v.typ.SubType(0).Type()
}

// SecondarySubType returns the value type tag for maps.
func (v *Value) SecondarySubType() datatype.ValueType {
	if v == nil {
		return datatype.ValueTypeUnknown
	}
	return v.typ.SubType(1).Type()
}

// nonNull returns the cell bytes or the status explaining their absence.
func (v *Value) nonNull() ([]byte, sdk.Status) {
	if v == nil || v.raw.slice == nil {
		return nil, sdk.StatusNullValue
	}
	return v.raw.slice, sdk.StatusOK
}

// Float reads a 32-bit IEEE 754 float cell.
func (v *Value) Float() (float32, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeFloat {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 4 {
		return 0, sdk.StatusInvalidData
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), sdk.StatusOK
}

// Double reads a 64-bit IEEE 754 float cell.
func (v *Value) Double() (float64, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeDouble {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 8 {
		return 0, sdk.StatusInvalidData
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), sdk.StatusOK
}

// Bool reads a boolean cell. Any non-zero byte is true.
func (v *Value) Bool() (bool, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return false, st
	}
	if v.typ.Type() != datatype.ValueTypeBoolean {
		return false, sdk.StatusInvalidValueType
	}
	if len(b) != 1 {
		return false, sdk.StatusInvalidData
	}
	return b[0] != 0, sdk.StatusOK
}

// Int8 reads a tinyint cell.
func (v *Value) Int8() (int8, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeTinyInt {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 1 {
		return 0, sdk.StatusInvalidData
	}
	return int8(b[0]), sdk.StatusOK
}

// Int16 reads a smallint cell.
func (v *Value) Int16() (int16, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeSmallInt {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 2 {
		return 0, sdk.StatusInvalidData
	}
	return int16(binary.BigEndian.Uint16(b)), sdk.StatusOK
}

// Int32 reads an int cell.
func (v *Value) Int32() (int32, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeInt {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 4 {
		return 0, sdk.StatusInvalidData
	}
	return int32(binary.BigEndian.Uint32(b)), sdk.StatusOK
}

// Uint32 reads a date cell, days since epoch with the epoch at 2^31.
func (v *Value) Uint32() (uint32, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return 0, st
	}
	if v.typ.Type() != datatype.ValueTypeDate {
		return 0, sdk.StatusInvalidValueType
	}
	if len(b) != 4 {
		return 0, sdk.StatusInvalidData
	}
	return binary.BigEndian.Uint32(b), sdk.StatusOK
}

// Int64 reads any of the 64-bit integer cells: bigint, counter, time, and
// timestamp. The type is checked before the null check, so reading an int
// column through Int64 reports a type mismatch even when the cell is null.
func (v *Value) Int64() (int64, sdk.Status) {
	if v == nil {
		return 0, sdk.StatusNullValue
	}
	switch v.typ.Type() {
	case datatype.ValueTypeBigInt, datatype.ValueTypeCounter,
		datatype.ValueTypeTime, datatype.ValueTypeTimestamp:
	default:
		return 0, sdk.StatusInvalidValueType
	}
	if v.raw.slice == nil {
		return 0, sdk.StatusNullValue
	}
	if len(v.raw.slice) != 8 {
		return 0, sdk.StatusInvalidData
	}
	return int64(binary.BigEndian.Uint64(v.raw.slice)), sdk.StatusOK
}

// UUID reads a uuid or timeuuid cell.
func (v *Value) UUID() (uuid.UUID, sdk.Status) {
	if v == nil {
		return uuid.UUID{}, sdk.StatusNullValue
	}
	switch v.typ.Type() {
	case datatype.ValueTypeUUID, datatype.ValueTypeTimeUUID:
	default:
		return uuid.UUID{}, sdk.StatusInvalidValueType
	}
	if v.raw.slice == nil {
		return uuid.UUID{}, sdk.StatusNullValue
	}
	id, err := uuid.FromBytes(v.raw.slice)
	if err != nil {
		return uuid.UUID{}, sdk.StatusInvalidData
	}
	return id, sdk.StatusOK
}

// Text reads an ascii, text, or varchar cell. The returned string is a copy
// and outlives the result that produced the value.
func (v *Value) Text() (string, sdk.Status) {
	if v == nil {
		return "", sdk.StatusNullValue
	}
	switch v.typ.Type() {
	case datatype.ValueTypeAscii, datatype.ValueTypeText, datatype.ValueTypeVarchar:
	default:
		return "", sdk.StatusInvalidValueType
	}
	if v.raw.slice == nil {
		return "", sdk.StatusNullValue
	}
	return string(v.raw.slice), sdk.StatusOK
}

// Bytes returns the raw cell bytes of any non-null value, without copying.
func (v *Value) Bytes() ([]byte, sdk.Status) {
	return v.nonNull()
}

// Inet reads an inet cell as an IPv4 or IPv6 address.
func (v *Value) Inet() (net.IP, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return nil, st
	}
	if v.typ.Type() != datatype.ValueTypeInet {
		return nil, sdk.StatusInvalidValueType
	}
	if len(b) != net.IPv4len && len(b) != net.IPv6len {
		return nil, sdk.StatusInvalidData
	}
	return net.IP(b), sdk.StatusOK
}

// Decimal reads a decimal cell: a big-endian int32 scale followed by a
// two's complement big-endian unscaled integer.
func (v *Value) Decimal() (decimal.Decimal, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return decimal.Decimal{}, st
	}
	if v.typ.Type() != datatype.ValueTypeDecimal {
		return decimal.Decimal{}, sdk.StatusInvalidValueType
	}
	if len(b) < 4 {
		return decimal.Decimal{}, sdk.StatusInvalidData
	}
	scale := int32(binary.BigEndian.Uint32(b))
	unscaled := bigIntFromSignedBytes(b[4:])
	return decimal.NewFromBigInt(unscaled, -scale), sdk.StatusOK
}

// DecimalVarint reads a decimal cell without interpreting the unscaled
// integer: it returns the two's complement varint bytes and the scale.
func (v *Value) DecimalVarint() ([]byte, int32, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return nil, 0, st
	}
	if v.typ.Type() != datatype.ValueTypeDecimal {
		return nil, 0, sdk.StatusInvalidValueType
	}
	if len(b) < 4 {
		return nil, 0, sdk.StatusInvalidData
	}
	return b[4:], int32(binary.BigEndian.Uint32(b)), sdk.StatusOK
}

// Duration reads a duration cell: three zigzag vints for months, days, and
// nanoseconds. Trailing bytes after the third vint are malformed.
func (v *Value) Duration() (months, days int32, nanos int64, st sdk.Status) {
	b, stat := v.nonNull()
	if stat != sdk.StatusOK {
		return 0, 0, 0, stat
	}
	if v.typ.Type() != datatype.ValueTypeDuration {
		return 0, 0, 0, sdk.StatusInvalidValueType
	}
	m, n, ok := readVInt(b)
	if !ok || m < math.MinInt32 || m > math.MaxInt32 {
		return 0, 0, 0, sdk.StatusInvalidData
	}
	b = b[n:]
	d, n, ok := readVInt(b)
	if !ok || d < math.MinInt32 || d > math.MaxInt32 {
		return 0, 0, 0, sdk.StatusInvalidData
	}
	b = b[n:]
	ns, n, ok := readVInt(b)
	if !ok || len(b) != n {
		return 0, 0, 0, sdk.StatusInvalidData
	}
	return int32(m), int32(d), ns, sdk.StatusOK
}

// ElementReader returns a reader over the serialized elements of a
// container value: the cells after the count header for collections, and
// the whole body for tuples and user-defined types.
func (v *Value) ElementReader() (*CellReader, sdk.Status) {
	b, st := v.nonNull()
	if st != sdk.StatusOK {
		return nil, st
	}
	switch v.typ.Type() {
	case datatype.ValueTypeList, datatype.ValueTypeMap, datatype.ValueTypeSet:
		return NewCellReader(b[4:]), sdk.StatusOK
	case datatype.ValueTypeTuple, datatype.ValueTypeUDT:
		return NewCellReader(b), sdk.StatusOK
	default:
		return nil, sdk.StatusInvalidValueType
	}
}

// readVInt decodes one zigzag-encoded vint: the number of leading one bits
// of the first byte is the number of extra bytes that follow. Returns the
// decoded value, the bytes consumed, and whether the buffer held a full
// vint.
func readVInt(b []byte) (int64, int, bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	extra := bits.LeadingZeros8(^b[0])
	if len(b) < 1+extra {
		return 0, 0, false
	}
	u := uint64(b[0] & byte(0xff>>uint(extra)))
	for i := 1; i <= extra; i++ {
		u = u<<8 | uint64(b[i])
	}
	return int64(u>>1) ^ -int64(u&1), 1 + extra, true
}

// bigIntFromSignedBytes interprets big-endian two's complement bytes.
func bigIntFromSignedBytes(b []byte) *big.Int {
	n := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
	}
	return n
}
