/*
Package value decodes single CQL cells and exposes typed getters over them.

A Value pairs the undecoded bytes of one cell with its full declared type.
Decoding happens in two stages: construction normalizes the cell (the legacy
empty-means-null rule) and precomputes the element count for container
types, failing fast on malformed container headers; the typed getters then
interpret the bytes on demand.

Getters report outcomes through sdk.Status rather than error values, so a
null cell, a type mismatch and malformed bytes stay distinguishable without
allocation on the hot read path:

	v, err := value.New(datatype.NewPrimitive(datatype.ValueTypeInt), cell)
	if err != nil {
		return err
	}
	n, st := v.Int32()
	if st != sdk.StatusOK {
		...
	}

All getters tolerate a nil receiver and report sdk.StatusNullValue.
*/
package value
