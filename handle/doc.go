/*
Package handle implements the ownership disciplines used to expose SDK
objects across an explicit construct/free boundary.

Three disciplines exist:

  - Exclusive-Owned: a single logical owner constructs the object and must
    release it exactly once (Result.Free, Iterator.Free, Schema.Free). These
    are plain structs; this package only documents the contract.
  - Shared-Counted: reference-counted immutable data, modeled by Shared.
    Release decrements the count and detaches the value at zero. Contents are
    immutable after construction, so concurrent reads need no locking.
  - Borrowed-Reference: a plain pointer into data owned by an exclusive or
    shared handle, valid only while the owner chain is alive; it has no
    release operation and never touches a reference count.

Callers must not release a shared cell concurrently with a read that has not
completed; the SDK preserves Go memory safety regardless, but the value may
be observed as detached.
*/
package handle
