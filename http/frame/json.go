package frame

import (
	"github.com/indigo-web/h1frame/http/status"
	json "github.com/json-iterator/go"
)

type jsonFrame struct {
	StatusCode    *status.Code      `json:"status_code,omitempty"`
	ReasonPhrase  string            `json:"reason_phrase,omitempty"`
	Version       string            `json:"version,omitempty"`
	Method        string            `json:"method,omitempty"`
	URI           string            `json:"uri,omitempty"`
	Headers       map[string]string `json:"headers"`
	ContentLength *int64            `json:"content_length,omitempty"`
	Chunked       bool              `json:"chunked"`
	Body          string            `json:"body"`
}

// MarshalJSON dumps the frame for diagnostic purposes. Unset optional fields are omitted.
func (f Frame) MarshalJSON() ([]byte, error) {
	dump := jsonFrame{
		ReasonPhrase: f.reasonPhrase,
		Version:      f.version,
		Method:       f.method,
		URI:          f.uri,
		Headers:      make(map[string]string, f.HeadersLen()),
		Chunked:      f.chunked,
		Body:         string(f.body),
	}

	if code, ok := f.StatusCode(); ok {
		dump.StatusCode = &code
	}

	if length, ok := f.ContentLength(); ok {
		dump.ContentLength = &length
	}

	for name, value := range f.Headers() {
		dump.Headers[name] = value
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(dump)
}
