package result

import (
	"strings"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
)

type columnSpec struct {
	name string
	typ  *datatype.DataType
}

// Metadata is the column layout of a rows result: names and resolved types
// in server order. Immutable after construction, safe to share across the
// results of a prepared statement.
type Metadata struct {
	cols []columnSpec
}

// NewMetadata copies the driver column specs into result metadata.
func NewMetadata(cols []driver.ColumnSpec) *Metadata {
	m := &Metadata{cols: make([]columnSpec, len(cols))}
	for i, c := range cols {
		m.cols[i] = columnSpec{name: c.Name, typ: c.Type}
	}
	return m
}

// ColumnCount returns the number of columns.
func (m *Metadata) ColumnCount() int {
	if m == nil {
		return 0
	}
	return len(m.cols)
}

// Name returns the name of the i-th column.
func (m *Metadata) Name(i int) (string, sdk.Status) {
	if m == nil || i < 0 || i >= len(m.cols) {
		return "", sdk.StatusIndexOutOfBounds
	}
	return m.cols[i].name, sdk.StatusOK
}

// Type returns the full type of the i-th column, or nil when out of range.
func (m *Metadata) Type(i int) *datatype.DataType {
	if m == nil || i < 0 || i >= len(m.cols) {
		return nil
	}
	return m.cols[i].typ
}

// IndexByName returns the index of the named column, or -1. A name wrapped
// in double quotes matches case-sensitively; an unquoted name matches
// ASCII case-insensitively, the same contract CQL applies to identifiers.
func (m *Metadata) IndexByName(name string) int {
	if m == nil {
		return -1
	}
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		want := name[1 : len(name)-1]
		for i, c := range m.cols {
			if c.name == want {
				return i
			}
		}
		return -1
	}
	for i, c := range m.cols {
		if equalASCIIFold(c.name, name) {
			return i
		}
	}
	return -1
}

// equalASCIIFold compares two identifiers ignoring the case of ASCII
// letters only. Unicode case pairs such as K and the Kelvin sign stay
// distinct, matching the server's identifier rules.
func equalASCIIFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
