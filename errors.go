package sdk

import "errors"

var (
	// ErrSourceFailed indicates that the driver-side collaborator failed to
	// produce a result payload.
	ErrSourceFailed = errors.New("result source failed")

	// ErrRowDecode wraps a deserialization failure while decoding a row from
	// the raw frame cells.
	ErrRowDecode = errors.New("failed to decode row")

	// ErrColumnCountMismatch signals a raw row whose cell count does not match
	// the result metadata.
	ErrColumnCountMismatch = errors.New("row cell count does not match column metadata")

	// ErrBadCollectionLength wraps a malformed collection header (fewer than
	// four bytes, or a negative element count).
	ErrBadCollectionLength = errors.New("invalid collection length header")
)
