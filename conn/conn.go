// Package conn implements the transport sinks that carry framed pixel data
// to a Unicorn HAT HD, or to a stand-in for one.
package conn

import "errors"

// Conn errors.
var (
	ErrClosed = errors.New("conn: connection is closed")
	ErrNoPort = errors.New("conn: no port configured")
)

// Sink is the destination for framed pixel data.
//
// A Sink is bound to exactly one transport when it is constructed and keeps
// it for its whole lifetime. Write sends one complete frame in a single
// synchronous operation; a partial write is an error, never silently
// truncated or retried. Sinks are not safe for concurrent use, callers that
// share a Sink between goroutines must serialize access themselves.
type Sink interface {
	String() string

	// Write sends one complete frame to the device.
	Write(frame []byte) error

	// Close the underlying transport.
	Close() error
}
