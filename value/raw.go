package value

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
)

// ErrShortCell is returned by CellReader when a cell header or body runs
// past the end of the buffer.
var ErrShortCell = errors.New("cell exceeds remaining bytes")

// rawValue is the normalized form of one cell: the (possibly nil) byte view
// plus the element count precomputed at construction for container types.
type rawValue struct {
	// slice is nil for a CQL null, non-nil otherwise. A zero-length
	// non-nil slice is a present-but-empty value.
	slice []byte

	itemCount int
	hasCount  bool
}

// emptyMeansNull reports whether a present zero-length cell of the given
// type must be read as null. The protocol allows serializing "empty" for
// most scalar types; container, duration, counter and the string-like types
// keep a zero-length cell as a real value.
func emptyMeansNull(t datatype.ValueType) bool {
	switch t {
	case datatype.ValueTypeList, datatype.ValueTypeMap, datatype.ValueTypeSet,
		datatype.ValueTypeUDT, datatype.ValueTypeDuration, datatype.ValueTypeCounter,
		datatype.ValueTypeAscii, datatype.ValueTypeText, datatype.ValueTypeVarchar,
		datatype.ValueTypeBlob:
		return false
	default:
		return true
	}
}

// decodeRaw normalizes a cell against its declared type and precomputes the
// element count for container types. Malformed container headers are
// rejected here so that count accessors never fail later.
func decodeRaw(dt *datatype.DataType, cell []byte) (rawValue, error) {
	kind := dt.Type()
	if cell != nil && len(cell) == 0 && emptyMeansNull(kind) {
		cell = nil
	}

	raw := rawValue{slice: cell}
	switch kind {
	case datatype.ValueTypeList, datatype.ValueTypeMap, datatype.ValueTypeSet:
		if cell == nil {
			break
		}
		if len(cell) < 4 {
			return rawValue{}, errors.Join(sdk.ErrBadCollectionLength,
				fmt.Errorf("%s cell has %d bytes, want at least 4", kind, len(cell)))
		}
		n := int32(binary.BigEndian.Uint32(cell))
		if n < 0 {
			return rawValue{}, errors.Join(sdk.ErrBadCollectionLength,
				fmt.Errorf("%s cell declares %d elements", kind, n))
		}
		raw.itemCount = int(n)
		raw.hasCount = true
	case datatype.ValueTypeTuple, datatype.ValueTypeUDT:
		raw.itemCount = dt.SubTypeCount()
		raw.hasCount = true
	}
	return raw, nil
}

// CellReader walks a sequence of length-prefixed cells, the layout used for
// the bodies of collections, tuples, and user-defined type values. Each cell
// is a signed big-endian int32 length followed by that many bytes; a
// negative length is a null cell.
type CellReader struct {
	buf []byte
}

// NewCellReader returns a reader over the given serialized cells.
func NewCellReader(body []byte) *CellReader {
	return &CellReader{buf: body}
}

// Next returns the next cell as a sub-slice of the buffer, or nil with
// null=true for a null cell. It returns io.EOF once the buffer is cleanly
// exhausted and ErrShortCell when a header or body is truncated.
func (r *CellReader) Next() (cell []byte, null bool, err error) {
	if len(r.buf) == 0 {
		return nil, false, io.EOF
	}
	if len(r.buf) < 4 {
		return nil, false, ErrShortCell
	}
	n := int32(binary.BigEndian.Uint32(r.buf))
	r.buf = r.buf[4:]
	if n < 0 {
		return nil, true, nil
	}
	if int(n) > len(r.buf) {
		return nil, false, ErrShortCell
	}
	cell = r.buf[:n:n]
	r.buf = r.buf[n:]
	return cell, false, nil
}
