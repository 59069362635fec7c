package frame

import (
	"errors"
	"io"

	"github.com/indigo-web/utils/buffer"
)

var errLineTooLong = errors.New("line exceeds the length ceiling")

// lineReader reads lines byte by byte, so the source is never consumed past the line feed.
// That keeps whatever follows the headers (the body, or the next frame) intact for the
// caller.
type lineReader struct {
	buff *buffer.Buffer[byte]
}

func newLineReader(prealloc, maxLength int) lineReader {
	return lineReader{
		buff: buffer.NewBuffer[byte](min(prealloc, maxLength), maxLength),
	}
}

// Read returns the next line without the line terminator. A stream ending in the middle of
// a line returns the line as is, the next call results in io.EOF then.
func (l lineReader) Read(src Source) (string, error) {
	l.buff.Clear()

	for n := 0; ; n++ {
		c, err := src.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				break
			}

			return "", err
		}

		if c == '\n' {
			break
		}

		if !l.buff.Append(c) {
			return "", errLineTooLong
		}
	}

	return string(stripCR(l.buff.Finish())), nil
}

func stripCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}

	return b
}
