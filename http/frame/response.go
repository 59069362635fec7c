package frame

import (
	"io"
	"slices"
	"strconv"

	"github.com/indigo-web/h1frame/http/status"
	"github.com/indigo-web/h1frame/kv"
)

const crlf = "\r\n"

// Response describes a response frame to be serialized. It's immutable once constructed and
// may be built any number of times, also concurrently.
type Response struct {
	version string
	status  status.StatusCode
	headers *kv.Storage
	body    []byte
}

// NewResponse copies the headers and the body, so the caller is free to reuse them
// afterwards. Nil headers and nil body are both fine.
func NewResponse(st status.StatusCode, version string, headers *kv.Storage, body []byte) Response {
	return Response{
		version: version,
		status:  st,
		headers: headers.Clone(),
		body:    slices.Clone(body),
	}
}

func (r Response) Status() status.StatusCode {
	return r.status
}

func (r Response) Version() string {
	return r.version
}

// Build serializes the response into a newly allocated buffer.
func (r Response) Build() []byte {
	return Build(r.status, r.version, r.headers, r.body)
}

// WriteTo writes the serialized response in a single Write call. The writer is neither
// flushed nor closed.
func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Build())
	return int64(n), err
}

// Build serializes a response frame. Headers go in their insertion order. Content-Length is
// added only if the body isn't empty and the headers don't carry one already (in any case),
// in which case the caller's value wins even if it lies. The body is copied verbatim.
func Build(st status.StatusCode, version string, headers *kv.Storage, body []byte) []byte {
	buff := make([]byte, 0, estimateSize(st, version, headers, body))

	buff = append(buff, version...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(st.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, st.Reason...)
	buff = append(buff, crlf...)

	for name, value := range headers.Pairs() {
		buff = appendHeader(buff, name, value)
	}

	if len(body) > 0 && !headers.Has("Content-Length") {
		buff = append(buff, "Content-Length: "...)
		buff = strconv.AppendInt(buff, int64(len(body)), 10)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)

	return append(buff, body...)
}

func appendHeader(buff []byte, name, value string) []byte {
	buff = append(buff, name...)
	buff = append(buff, ':', ' ')
	buff = append(buff, value...)

	return append(buff, crlf...)
}

func estimateSize(st status.StatusCode, version string, headers *kv.Storage, body []byte) int {
	const (
		statusLineOverhead = len("  000\r\n")
		headerOverhead     = len(": \r\n")
		contentLength      = len("Content-Length: \r\n") + 20
	)

	size := len(version) + len(st.Reason) + statusLineOverhead

	for name, value := range headers.Pairs() {
		size += len(name) + len(value) + headerOverhead
	}

	return size + contentLength + len(crlf) + len(body)
}
