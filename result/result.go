package result

import (
	"errors"

	"github.com/google/uuid"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/driver"
	"github.com/cqlbridge/sdk/handle"
)

// ErrNilSource is returned when New is called without a source.
var ErrNilSource = errors.New("source cannot be nil")

// rowsData is the shared owner of one page: the raw row cells plus a
// reference on the column metadata.
type rowsData struct {
	rows [][][]byte
	meta *handle.Shared[Metadata]
}

// Config provides result construction options.
type Config struct {
	// Source produces the raw result payload. Required.
	Source driver.Source

	// Metadata optionally reuses column metadata decoded by an earlier
	// execution of the same prepared statement. When nil, or when the
	// shared cell has already been released, metadata is rebuilt from the
	// payload's column specs.
	Metadata *handle.Shared[Metadata]
}

// Result owns one page of a query response. A Result for a non-rows
// response (DDL, USE, and similar) carries no page; its row and column
// accessors report emptiness rather than failing.
//
// Free must be called exactly once; every Row and Value handed out borrows
// the page and must not be used afterwards.
type Result struct {
	isRows       bool
	hasMorePages bool
	pagingState  []byte
	tracingID    *uuid.UUID

	shared   *handle.Shared[rowsData]
	firstRow *Row
}

// New executes the source and takes ownership of the returned page. The
// first row, if any, is decoded eagerly; a row that cannot be decoded fails
// construction with sdk.ErrRowDecode.
func New(cfg Config) (*Result, error) {
	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	raw, err := cfg.Source.Result()
	if err != nil {
		return nil, errors.Join(sdk.ErrSourceFailed, err)
	}

	r := &Result{
		isRows:       raw.IsRows,
		hasMorePages: raw.HasMorePages,
		pagingState:  raw.PagingState,
		tracingID:    raw.TracingID,
	}
	if !raw.IsRows {
		return r, nil
	}

	var meta *handle.Shared[Metadata]
	if cfg.Metadata != nil {
		meta = cfg.Metadata.Acquire()
	}
	if meta == nil {
		meta = handle.NewShared(NewMetadata(raw.Columns))
	}

	r.shared = handle.NewShared(&rowsData{rows: raw.Rows, meta: meta})
	if len(raw.Rows) > 0 {
		row, err := decodeRow(meta.Get(), raw.Rows[0])
		if err != nil {
			r.Free()
			return nil, err
		}
		// the first row keeps its own reference on the page
		r.shared.Acquire()
		r.firstRow = row
	}
	return r, nil
}

// data returns the live page, or nil for non-rows and freed results.
func (r *Result) data() *rowsData {
	if r == nil || r.shared == nil {
		return nil
	}
	return r.shared.Get()
}

// metadata returns the live column metadata, or nil.
func (r *Result) metadata() *Metadata {
	d := r.data()
	if d == nil {
		return nil
	}
	return d.meta.Get()
}

// IsRows reports whether the response carried a rows payload.
func (r *Result) IsRows() bool {
	return r != nil && r.isRows
}

// RowCount returns the number of rows in this page.
func (r *Result) RowCount() int {
	d := r.data()
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// ColumnCount returns the number of result columns.
func (r *Result) ColumnCount() int {
	return r.metadata().ColumnCount()
}

// ColumnName returns the name of the i-th result column.
func (r *Result) ColumnName(i int) (string, sdk.Status) {
	return r.metadata().Name(i)
}

// ColumnType returns the type tag of the i-th result column, or
// ValueTypeUnknown when out of range.
func (r *Result) ColumnType(i int) datatype.ValueType {
	return r.metadata().Type(i).Type()
}

// ColumnDataType returns the full type of the i-th result column, or nil
// when out of range.
func (r *Result) ColumnDataType(i int) *datatype.DataType {
	return r.metadata().Type(i)
}

// FirstRow returns the eagerly decoded first row, or nil when the page is
// empty or the result carried no rows.
func (r *Result) FirstRow() *Row {
	if r == nil {
		return nil
	}
	return r.firstRow
}

// DecodeRow decodes the i-th raw row of the page. Iteration decodes rows
// through here, one at a time.
func (r *Result) DecodeRow(i int) (*Row, error) {
	d := r.data()
	if d == nil || i < 0 || i >= len(d.rows) {
		return nil, errors.New("row index out of range")
	}
	return decodeRow(d.meta.Get(), d.rows[i])
}

// HasMorePages reports whether another page can be fetched.
func (r *Result) HasMorePages() bool {
	return r != nil && r.hasMorePages
}

// PagingState returns the opaque token for fetching the next page, and
// sdk.StatusNoPagingState when this was the last page.
func (r *Result) PagingState() ([]byte, sdk.Status) {
	if r == nil || !r.hasMorePages || len(r.pagingState) == 0 {
		return nil, sdk.StatusNoPagingState
	}
	return r.pagingState, sdk.StatusOK
}

// TracingID returns the server tracing session id, when the query was
// traced.
func (r *Result) TracingID() (uuid.UUID, bool) {
	if r == nil || r.tracingID == nil {
		return uuid.UUID{}, false
	}
	return *r.tracingID, true
}

// Free releases the page and its metadata reference. Safe on nil and on
// non-rows results; must not be called twice.
func (r *Result) Free() {
	if r == nil || r.shared == nil {
		return
	}
	if r.firstRow != nil {
		r.shared.Release()
		r.firstRow = nil
	}
	d := r.shared.Get()
	if r.shared.Release() && d != nil {
		d.meta.Release()
	}
	r.shared = nil
}
