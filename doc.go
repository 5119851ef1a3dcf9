/*
Package sdk is the root of the CQL result compatibility SDK: a low-level,
handle-oriented layer for reading query results, typed values, and schema
metadata produced by a CQL driver.

The package exposes the shared Status code taxonomy returned by accessor
functions across the SDK, the sentinel errors joined into construction
errors, and the package-wide logger used for the few conditions this layer
can only report out-of-band (mid-iteration decode failures, stale schema
references).

The subpackages follow a strict ownership discipline: results, iterators,
and schema snapshots are explicitly constructed and freed by the caller;
rows, values, and metadata nodes are borrowed from their owner and are valid
only while that owner is alive. Every exported accessor tolerates a nil
handle and reports StatusBadParams or a nil result instead of panicking.
*/
package sdk
