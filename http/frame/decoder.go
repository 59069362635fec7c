package frame

import (
	"io"

	"github.com/indigo-web/h1frame/config"
)

// Source is a byte stream frames are decoded from. It's read byte by byte while reading
// lines, so it should be buffered (bufio.Reader, bytes.Reader, transport.Source). The decoder
// never closes it.
type Source interface {
	io.Reader
	io.ByteReader
}

// Decoder decodes HTTP/1.x frames with bounded memory: a single line is limited by
// config.Line.MaxLength and the whole headers block by config.Headers.MaxSpace.
//
// The decoder reuses its line buffer between calls, so it must not be shared among
// goroutines. Decoding blocks for as long as the source does, deadlines are the source's
// responsibility.
type Decoder struct {
	cfg  *config.Config
	line lineReader
}

// NewDecoder returns a new decoder. Nil config stands for config.Default().
func NewDecoder(cfg *config.Config) *Decoder {
	cfg = config.OrDefault(cfg)

	return &Decoder{
		cfg:  cfg,
		line: newLineReader(cfg.Line.Prealloc, cfg.Line.MaxLength),
	}
}

// DecodeFirstLine reads and classifies the start line only.
func (d *Decoder) DecodeFirstLine(src Source) (Frame, State) {
	f := newFrame(d.cfg.Headers.Prealloc)
	state := d.decodeFirstLine(src, &f)

	return f, state
}

// ParseHeaders consumes header lines up to the first blank line or the end of the stream,
// adding them to a copy of f. The passed frame stays untouched.
func (d *Decoder) ParseHeaders(src Source, f Frame) (Frame, State) {
	f = f.clone()
	state := d.parseHeaders(src, &f)

	return f, state
}

// ParseFull decodes the start line, the headers and, if Content-Length is positive, the body.
// Chunked bodies aren't decoded, see Frame.Chunked.
func (d *Decoder) ParseFull(src Source) (Frame, State) {
	f := newFrame(d.cfg.Headers.Prealloc)

	if state := d.decodeFirstLine(src, &f); state != OK {
		return f, state
	}

	if state := d.parseHeaders(src, &f); state != OK {
		return f, state
	}

	return f, d.readBody(src, &f)
}

func (d *Decoder) decodeFirstLine(src Source, f *Frame) State {
	line, err := d.line.Read(src)
	switch err {
	case nil:
	case io.EOF:
		// nothing at all was sent
		return FrameError
	default:
		return ReadingError
	}

	return f.parseFirstLine(line)
}

func (d *Decoder) parseHeaders(src Source, f *Frame) State {
	var space int

	for {
		line, err := d.line.Read(src)
		switch err {
		case nil:
		case io.EOF:
			return OK
		default:
			return ReadingError
		}

		if len(line) == 0 {
			return OK
		}

		if space += len(line); space > d.cfg.Headers.MaxSpace {
			return FrameError
		}

		f.parseHeaderLine(line)
	}
}

func (d *Decoder) readBody(src Source, f *Frame) State {
	length, ok := f.ContentLength()
	if !ok || length <= 0 {
		return OK
	}

	// not pre-allocating the whole length, as it's taken from an untrusted peer
	body, err := io.ReadAll(io.LimitReader(src, length))
	f.body = body
	if err != nil {
		return ReadingError
	}

	return OK
}
