package iterator

import (
	"io"

	"github.com/cqlbridge/sdk"
	"github.com/cqlbridge/sdk/datatype"
	"github.com/cqlbridge/sdk/meta"
	"github.com/cqlbridge/sdk/result"
	"github.com/cqlbridge/sdk/value"
)

// cursor is one concrete iteration shape. next either advances and returns
// true, or returns false forever after.
type cursor interface {
	next() bool
}

// resultCursor decodes result rows one position at a time. A row that fails
// to decode is logged and ends the iteration without advancing, so retrying
// hits the same row and fails again.
type resultCursor struct {
	res *result.Result
	pos int
	row *result.Row
}

func (c *resultCursor) next() bool {
	if c.res == nil || !c.res.IsRows() {
		return false
	}
	cand := c.pos + 1
	if cand >= c.res.RowCount() {
		c.pos = cand
		c.row = nil
		return false
	}
	row, err := c.res.DecodeRow(cand)
	if err != nil {
		logger := sdk.Logger()
		logger.Error().Err(err).Int("row", cand).Msg("skipping rest of result, row failed to decode")
		c.row = nil
		return false
	}
	c.pos = cand
	c.row = row
	return true
}

// rowCursor walks the columns of one decoded row.
type rowCursor struct {
	row *result.Row
	pos int
}

func (c *rowCursor) next() bool {
	c.pos++
	return c.row != nil && c.pos < c.row.ColumnCount()
}

func (c *rowCursor) column() *value.Value {
	return c.row.Column(c.pos)
}

// cellCursor walks length-prefixed element cells: collection elements,
// flattened map entries, and tuple slots. The element type is resolved per
// position at construction time through typeAt.
//
// Tuples may be serialized with fewer cells than their arity; with
// nullPastEnd set, the missing tail reads as null slots. For collections the
// declared count is authoritative and a short body is malformed.
type cellCursor struct {
	length      int
	typeAt      func(i int) *datatype.DataType
	reader      *value.CellReader
	nullPastEnd bool

	pos    int
	cur    *value.Value
	failed bool
}

func (c *cellCursor) next() bool {
	if c.failed {
		return false
	}
	cand := c.pos + 1
	if cand >= c.length {
		c.pos = cand
		c.cur = nil
		return false
	}

	cell, null, err := c.reader.Next()
	switch {
	case err == io.EOF && c.nullPastEnd:
		cell, null = nil, true
	case err != nil:
		logger := sdk.Logger()
		logger.Error().Err(err).Int("element", cand).Msg("skipping rest of container, element cell is malformed")
		c.failed = true
		c.cur = nil
		return false
	}
	if null {
		cell = nil
	}

	v, err := value.New(c.typeAt(cand), cell)
	if err != nil {
		logger := sdk.Logger()
		logger.Error().Err(err).Int("element", cand).Msg("skipping rest of container, element failed to decode")
		c.failed = true
		c.cur = nil
		return false
	}
	c.pos = cand
	c.cur = v
	return true
}

// mapCursor yields one full map entry per step by stepping a flattened
// cursor twice. A failure on either half ends the iteration with no stale
// key exposed.
type mapCursor struct {
	inner *cellCursor
	key   *value.Value
	val   *value.Value
}

func (c *mapCursor) next() bool {
	if !c.inner.next() {
		c.key, c.val = nil, nil
		return false
	}
	key := c.inner.cur
	if !c.inner.next() {
		c.key, c.val = nil, nil
		return false
	}
	c.key, c.val = key, c.inner.cur
	return true
}

// udtCursor walks the fields of a user-defined type value in declaration
// order. Fields past the end of a truncated body read as null.
type udtCursor struct {
	dt     *datatype.DataType
	reader *value.CellReader

	pos    int
	name   string
	cur    *value.Value
	failed bool
}

func (c *udtCursor) next() bool {
	if c.failed {
		return false
	}
	cand := c.pos + 1
	if cand >= c.dt.SubTypeCount() {
		c.pos = cand
		c.name, c.cur = "", nil
		return false
	}
	field, _ := c.dt.Field(cand)

	cell, null, err := c.reader.Next()
	switch {
	case err == io.EOF:
		cell, null = nil, true
	case err != nil:
		logger := sdk.Logger()
		logger.Error().Err(err).Str("field", field.Name).Msg("skipping rest of user type, field cell is malformed")
		c.failed = true
		c.name, c.cur = "", nil
		return false
	}
	if null {
		cell = nil
	}

	v, err := value.New(field.Type, cell)
	if err != nil {
		logger := sdk.Logger()
		logger.Error().Err(err).Str("field", field.Name).Msg("skipping rest of user type, field failed to decode")
		c.failed = true
		c.name, c.cur = "", nil
		return false
	}
	c.pos = cand
	c.name, c.cur = field.Name, v
	return true
}

// keyspacesCursor walks the keyspaces of a schema snapshot in name order.
type keyspacesCursor struct {
	schema *meta.Schema
	pos    int
}

func (c *keyspacesCursor) next() bool {
	c.pos++
	return c.pos < c.schema.KeyspaceCount()
}

func (c *keyspacesCursor) keyspace() *meta.Keyspace {
	return c.schema.KeyspaceAt(c.pos)
}

// tablesCursor walks the tables of a keyspace in name order.
type tablesCursor struct {
	ks  *meta.Keyspace
	pos int
}

func (c *tablesCursor) next() bool {
	c.pos++
	return c.pos < c.ks.TableCount()
}

func (c *tablesCursor) table() *meta.Table {
	return c.ks.TableAt(c.pos)
}

// userTypesCursor walks the user-defined types of a keyspace in name order.
type userTypesCursor struct {
	ks  *meta.Keyspace
	pos int
}

func (c *userTypesCursor) next() bool {
	c.pos++
	return c.pos < c.ks.UserTypeCount()
}

func (c *userTypesCursor) userType() *datatype.DataType {
	return c.ks.UserTypeAt(c.pos)
}

// viewsCursor walks materialized views from either of its two sources:
// every view of a keyspace, or only the views built from one table.
// Exactly one of ks and tbl is set.
type viewsCursor struct {
	ks  *meta.Keyspace
	tbl *meta.Table
	pos int
}

func (c *viewsCursor) next() bool {
	c.pos++
	if c.tbl != nil {
		return c.pos < c.tbl.ViewCount()
	}
	return c.pos < c.ks.ViewCount()
}

func (c *viewsCursor) view() *meta.View {
	if c.tbl != nil {
		return c.tbl.ViewAt(c.pos)
	}
	return c.ks.ViewAt(c.pos)
}

// columnsCursor walks columns from either of its two sources: a table or a
// materialized view, in positional layout order. Exactly one of tbl and vw
// is set.
type columnsCursor struct {
	tbl *meta.Table
	vw  *meta.View
	pos int
}

func (c *columnsCursor) next() bool {
	c.pos++
	if c.vw != nil {
		return c.pos < c.vw.ColumnCount()
	}
	return c.pos < c.tbl.ColumnCount()
}

func (c *columnsCursor) column() *meta.Column {
	if c.vw != nil {
		return c.vw.Column(c.pos)
	}
	return c.tbl.Column(c.pos)
}
