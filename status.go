package sdk

// Status is the error code returned by fallible accessor functions across the
// SDK. Accessors return a Status instead of a Go error so that the calling
// convention stays uniform with the handle-based API this layer mirrors.
type Status int

const (
	// StatusOK means the operation succeeded and the output is valid.
	StatusOK Status = iota

	// StatusNullValue means the requested value is absent (CQL null), or the
	// value handle itself was nil.
	StatusNullValue

	// StatusInvalidValueType means a typed getter was called against a column
	// whose resolved type it does not accept.
	StatusInvalidValueType

	// StatusInvalidData means the raw bytes were malformed for the declared
	// type (frame corruption or protocol mismatch).
	StatusInvalidData

	// StatusIndexOutOfBounds means a positional accessor was past the end.
	StatusIndexOutOfBounds

	// StatusNoPagingState means the result has no further pages, so there is
	// no paging token to return.
	StatusNoPagingState

	// StatusBadParams means a disallowed nil handle or malformed input.
	StatusBadParams
)

var statusNames = map[Status]string{
	StatusOK:               "OK",
	StatusNullValue:        "NULL_VALUE",
	StatusInvalidValueType: "INVALID_VALUE_TYPE",
	StatusInvalidData:      "INVALID_DATA",
	StatusIndexOutOfBounds: "INDEX_OUT_OF_BOUNDS",
	StatusNoPagingState:    "NO_PAGING_STATE",
	StatusBadParams:        "BAD_PARAMS",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
