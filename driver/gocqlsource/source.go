package gocqlsource

import (
	"errors"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/google/uuid"

	"github.com/cqlbridge/sdk/driver"
)

// ErrNilIter is returned when the source is built without an iterator.
var ErrNilIter = errors.New("iter cannot be nil")

// Config configures a gocql-backed result source.
type Config struct {
	// Iter is the gocql result iterator to drain. Required.
	Iter *gocql.Iter

	// TracingID optionally carries the tracing session id of the query.
	// gocql reports tracing through its own tracer interface, so the
	// caller forwards the id here when tracing was enabled.
	TracingID *uuid.UUID
}

// Source drains a gocql.Iter into one driver.RawResult.
type Source struct {
	cfg Config
}

// New creates a result source from a gocql iterator.
func New(cfg Config) *Source {
	return &Source{cfg: cfg}
}

// rawCell captures the undecoded wire bytes of a single column.
type rawCell struct {
	data []byte
	null bool
}

// UnmarshalCQL copies the cell bytes instead of decoding them. gocql may
// reuse frame buffers between scans, so the copy is required.
func (c *rawCell) UnmarshalCQL(_ gocql.TypeInfo, data []byte) error {
	if data == nil {
		c.data, c.null = nil, true
		return nil
	}
	c.data, c.null = append([]byte(nil), data...), false
	return nil
}

// Result drains the iterator and closes it. The whole page is materialized;
// paging across pages stays with the caller through PageState.
func (s *Source) Result() (driver.RawResult, error) {
	if s == nil || s.cfg.Iter == nil {
		return driver.RawResult{}, ErrNilIter
	}
	iter := s.cfg.Iter

	cols := iter.Columns()
	specs := make([]driver.ColumnSpec, len(cols))
	for i, c := range cols {
		specs[i] = driver.ColumnSpec{Name: c.Name, Type: ConvertType(c.TypeInfo)}
	}

	cells := make([]*rawCell, len(cols))
	dest := make([]interface{}, len(cols))
	for i := range cells {
		cells[i] = &rawCell{}
		dest[i] = cells[i]
	}

	var rows [][][]byte
	for iter.Scan(dest...) {
		row := make([][]byte, len(cols))
		for i, c := range cells {
			if !c.null {
				row[i] = c.data
				if row[i] == nil {
					row[i] = []byte{}
				}
			}
			c.data, c.null = nil, false
		}
		rows = append(rows, row)
	}
	if err := iter.Close(); err != nil {
		return driver.RawResult{}, err
	}

	state := iter.PageState()
	return driver.RawResult{
		IsRows:       len(cols) > 0,
		Columns:      specs,
		Rows:         rows,
		PagingState:  state,
		HasMorePages: len(state) > 0,
		TracingID:    s.cfg.TracingID,
	}, nil
}
