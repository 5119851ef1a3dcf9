/*
Package result owns one page of a query response and hands out borrowed
views into it.

A Result is built from a driver.Source in one shot: the column metadata is
captured, the first row is decoded eagerly (construction fails if it cannot
be decoded), and every other row stays as raw cells until something asks for
it. Rows, and the Values they hand out, borrow the page bytes; they are
valid until Free releases the page.

The column Metadata is reference counted separately from the page so that a
prepared statement can decode it once and share it across every execution's
Result (see Config.Metadata).
*/
package result
