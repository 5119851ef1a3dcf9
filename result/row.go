package result

import (
	"errors"
	"fmt"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/value"
)

// Row is one decoded row. It borrows the page bytes of the Result that
// produced it.
type Row struct {
	meta   *Metadata
	values []*value.Value
}

// decodeRow materializes every cell of a raw row against the metadata.
func decodeRow(meta *Metadata, cells [][]byte) (*Row, error) {
	if len(cells) != meta.ColumnCount() {
		return nil, errors.Join(sdk.ErrColumnCountMismatch,
			fmt.Errorf("row has %d cells, metadata has %d columns", len(cells), meta.ColumnCount()))
	}
	values := make([]*value.Value, len(cells))
	for i, cell := range cells {
		v, err := value.New(meta.cols[i].typ, cell)
		if err != nil {
			return nil, errors.Join(sdk.ErrRowDecode,
				fmt.Errorf("column %q at index %d: %w", meta.cols[i].name, i, err))
		}
		values[i] = v
	}
	return &Row{meta: meta, values: values}, nil
}

// ColumnCount returns the number of columns in the row.
func (r *Row) ColumnCount() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Column returns the value at the given index, or nil when the index is out
// of range. Any index is accepted.
func (r *Row) Column(i int) *value.Value {
	if r == nil || i < 0 || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// ColumnByName returns the value of the named column, honoring the quoting
// rules of Metadata.IndexByName, or nil when no column matches.
func (r *Row) ColumnByName(name string) *value.Value {
	if r == nil {
		return nil
	}
	return r.Column(r.meta.IndexByName(name))
}
