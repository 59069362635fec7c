package frame

import (
	"strconv"
	"strings"

	"github.com/indigo-web/h1frame/http/proto"
	"github.com/indigo-web/h1frame/http/status"
	"github.com/indigo-web/h1frame/internal/strutil"
)

// parseHeaderLine stores a single "name: value" line. Lines without a colon (or starting
// with one) are ignored silently. Derived fields failing to parse are left intact.
func (f *Frame) parseHeaderLine(line string) {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return
	}

	name := strings.ToLower(strutil.StripWS(line[:colon]))
	value := strutil.StripWS(line[colon+1:])
	f.headers.Set(name, value)

	switch name {
	case "content-length":
		length, err := strconv.ParseInt(value, 10, 64)
		if err != nil || length < 0 {
			return
		}

		f.contentLength, f.hasLength = length, true
	case "transfer-encoding":
		if strutil.ContainsFold(value, "chunked") {
			f.chunked = true
		}
	}
}

// parseFirstLine classifies the line as a status line if it starts with the HTTP/ scheme
// and as a request line otherwise. The status code must be a plain decimal fitting uint16:
// signs and codes above 65535 are a FrameError.
func (f *Frame) parseFirstLine(line string) State {
	var (
		tokens [3]string
		n      int
	)

	for line = strutil.LStripWS(line); len(line) > 0 && n < len(tokens); n++ {
		if n == len(tokens)-1 {
			// the last token keeps everything, so multi-word reason phrases stay intact
			tokens[n] = line
			continue
		}

		tokens[n], line = strutil.CutWS(line)
		line = strutil.LStripWS(line)
	}

	if n < 2 {
		return FrameError
	}

	if strings.HasPrefix(tokens[0], proto.Scheme) {
		f.version = tokens[0]

		code, err := strconv.ParseUint(tokens[1], 10, 16)
		if err != nil {
			return FrameError
		}

		f.statusCode, f.hasStatusCode = status.Code(code), true
		f.reasonPhrase = tokens[2]

		return OK
	}

	f.method, f.uri, f.version = tokens[0], tokens[1], tokens[2]

	return OK
}
