/*
Package mock provides a mock driver.Source for testing without a running
cluster.

	source := mock.New(mock.Config{
		Response: func() driver.RawResult {
			return driver.RawResult{IsRows: true}
		},
	})

	res, err := result.New(result.Config{Source: source})
*/
package mock

import (
	"errors"

	"github.com/cqlbridge/sdk/driver"
)

// Config configures the canned behavior of the mock source.
type Config struct {
	// Fail makes Result return an error instead of a payload.
	Fail bool

	// Error is the error returned when Fail is true. When nil, a generic
	// error is returned.
	Error error

	// Response produces the payload returned by Result. When nil, a zero
	// RawResult is returned.
	Response func() driver.RawResult
}

// Mock is a driver.Source with canned responses.
type Mock struct {
	cfg Config

	// Calls counts how many times Result was invoked.
	Calls int
}

// New creates a mock source from the given configuration.
func New(cfg Config) *Mock {
	return &Mock{cfg: cfg}
}

// Result returns the configured payload or failure.
func (m *Mock) Result() (driver.RawResult, error) {
	m.Calls++
	if m.cfg.Fail {
		if m.cfg.Error != nil {
			return driver.RawResult{}, m.cfg.Error
		}
		return driver.RawResult{}, errors.New("forced failure")
	}
	if m.cfg.Response != nil {
		return m.cfg.Response(), nil
	}
	return driver.RawResult{}, nil
}
