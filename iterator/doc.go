/*
Package iterator walks every iterable shape of the SDK behind one cursor
API: result rows, row columns, collection and tuple elements, map entries,
user-defined type fields, and the schema metadata collections.

A fresh iterator is positioned before the first element; each Next attempt
either advances to the next element and returns true, or returns false and
keeps returning false. There is no rewind. An element that cannot be decoded
is logged and ends the iteration, mirroring the lossy contract of the C API
this layer reproduces.

Iterators borrow whatever they iterate. They hold no references of their
own, so the result, value, or schema must outlive the iterator.

Maps can be walked two ways: FromCollection flattens a map into alternating
key and value positions, while FromMap yields one full entry per step
through the MapKey and MapValue accessors.
*/
package iterator
