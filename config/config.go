package config

import (
	"time"
)

type (
	Line struct {
		// MaxLength is the ceiling for a single line (start line or a header line) in bytes.
		// The LF isn't counted, but a trailing CR is, as it's stripped only after the line is
		// read. A line growing beyond it aborts the read with frame.ReadingError.
		MaxLength int
		// Prealloc is the initial capacity of the line buffer.
		Prealloc int
	}

	Headers struct {
		// MaxSpace limits the cumulative size of all header lines of a single frame. Exceeding
		// it results in frame.FrameError.
		MaxSpace int
		// Prealloc is the number of pre-allocated seats for header pairs.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout is set as a read deadline before every read from the connection. The
		// decoder itself never times out, so this is the only thing keeping a silent peer
		// from blocking the caller forever.
		ReadTimeout time.Duration
	}
)

// Config holds limitations and pre-allocations for decoding frames and for the transport
// carrying them.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Line    Line
	Headers Headers
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Line: Line{
			MaxLength: 8 * 1024,
			Prealloc:  256,
		},
		Headers: Headers{
			MaxSpace: 64 * 1024,
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}

// OrDefault returns cfg itself unless it is nil.
func OrDefault(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}

	return cfg
}
