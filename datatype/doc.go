/*
Package datatype models the CQL data-type algebra: every native type plus the
list, set, map, tuple, user-defined, and custom shapes.

A DataType is immutable after construction and is shared freely between
result metadata, schema metadata, and values; accessors are safe on a nil
receiver and report ValueTypeUnknown instead of panicking. Collection element
types are carried here because the wire format of a value is not
self-describing below the column level.
*/
package datatype
