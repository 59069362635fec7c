package frame

import (
	"iter"
	"slices"

	"github.com/indigo-web/h1frame/http/proto"
	"github.com/indigo-web/h1frame/http/status"
	"github.com/indigo-web/h1frame/kv"
)

// Frame is a decoded HTTP/1.x message: either a response (status code is set) or a
// request (method and URI are set). It's returned by value from every decode operation
// along with its State, including the failed ones: fields populated before the failure
// stay populated, which helps to tell what exactly the peer has sent.
type Frame struct {
	statusCode    status.Code
	hasStatusCode bool
	hasLength     bool
	chunked       bool
	contentLength int64
	reasonPhrase  string
	version       string
	method        string
	uri           string
	headers       *kv.Storage
	body          []byte
}

func newFrame(headersPrealloc int) Frame {
	return Frame{
		headers: kv.NewPrealloc(headersPrealloc),
	}
}

// StatusCode returns the status code of a response frame.
func (f Frame) StatusCode() (code status.Code, ok bool) {
	return f.statusCode, f.hasStatusCode
}

func (f Frame) ReasonPhrase() string {
	return f.reasonPhrase
}

// Version returns the protocol token as it was received, e.g. HTTP/1.1. It's empty for
// requests carrying no version.
func (f Frame) Version() string {
	return f.version
}

// Protocol recognizes the version token.
func (f Frame) Protocol() proto.Protocol {
	return proto.FromString(f.version)
}

func (f Frame) Method() string {
	return f.method
}

func (f Frame) URI() string {
	return f.uri
}

func (f Frame) IsResponse() bool {
	return f.hasStatusCode
}

func (f Frame) IsRequest() bool {
	return len(f.method) > 0
}

// Header returns the value by the header name, which is case-insensitive.
func (f Frame) Header(name string) (value string, found bool) {
	return f.headers.Get(name)
}

// Headers iterates over lower-cased header names and their values.
func (f Frame) Headers() iter.Seq2[string, string] {
	return f.headers.Pairs()
}

func (f Frame) HeadersLen() int {
	return f.headers.Len()
}

// ContentLength returns the last successfully parsed Content-Length value.
func (f Frame) ContentLength() (length int64, ok bool) {
	return f.contentLength, f.hasLength
}

// Chunked reports whether Transfer-Encoding mentioned chunked. The body itself is never
// decoded in this case.
func (f Frame) Chunked() bool {
	return f.chunked
}

// Body returns a copy of the bytes actually read, which might be less than the content
// length if the stream ended early.
func (f Frame) Body() []byte {
	return slices.Clone(f.body)
}

func (f Frame) BodyLen() int {
	return len(f.body)
}

func (f Frame) clone() Frame {
	f.headers = f.headers.Clone()
	return f
}
