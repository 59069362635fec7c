package frame

import "errors"

// State is the outcome of a decode operation. Every operation returns exactly one of them,
// there's no pending state and nothing is ever retried.
type State uint8

const (
	OK State = iota
	// FrameError means the input is structurally invalid: too few start line tokens,
	// non-numeric status code, absent frame or too large headers block.
	FrameError
	// ReadingError means the byte source failed or a single line exceeded its ceiling.
	ReadingError
)

var (
	ErrFrame   = errors.New("malformed frame")
	ErrReading = errors.New("failed to read frame")
)

func (s State) String() string {
	switch s {
	case OK:
		return "OK"
	case FrameError:
		return "FRAME_ERROR"
	case ReadingError:
		return "READING_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Err returns nil for OK and a sentinel error otherwise.
func (s State) Err() error {
	switch s {
	case OK:
		return nil
	case FrameError:
		return ErrFrame
	default:
		return ErrReading
	}
}
