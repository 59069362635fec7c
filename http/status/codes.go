package status

/*
INFO: only the codes a speed-test style peer actually emits are registered here. Any other
code is still representable via New, the registry is just a set of well-known constants,
not a validator.
*/

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK        Code = 200 // RFC 9110, 15.3.1
	Created   Code = 201 // RFC 9110, 15.3.2
	Accepted  Code = 202 // RFC 9110, 15.3.3
	NoContent Code = 204 // RFC 9110, 15.3.5

	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8

	BadRequest   Code = 400 // RFC 9110, 15.5.1
	Unauthorized Code = 401 // RFC 9110, 15.5.2
	Forbidden    Code = 403 // RFC 9110, 15.5.4
	NotFound     Code = 404 // RFC 9110, 15.5.5

	InternalServerError Code = 500 // RFC 9110, 15.6.1
	BadGateway          Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable  Code = 503 // RFC 9110, 15.6.4
)

// StatusCode is an immutable pair of a numeric code and its reason phrase.
type StatusCode struct {
	Code   Code
	Reason Status
}

// New constructs an arbitrary pair, registered or not.
func New(code Code, reason Status) StatusCode {
	return StatusCode{Code: code, Reason: reason}
}

// Of pairs a registered code with its reason phrase. Unregistered codes get an empty
// reason, use New for them instead.
func Of(code Code) StatusCode {
	return New(code, Text(code))
}

// KnownCodes returns every registered code in ascending order. The slice is fresh on every
// call, so modifying it doesn't affect the registry.
func KnownCodes() []Code {
	return []Code{
		OK, Created, Accepted, NoContent,
		MovedPermanently, Found, SeeOther, NotModified, TemporaryRedirect,
		BadRequest, Unauthorized, Forbidden, NotFound,
		InternalServerError, BadGateway, ServiceUnavailable,
	}
}

// Lookup returns the registered pair for the code.
func Lookup(code Code) (StatusCode, bool) {
	text := Text(code)
	if len(text) == 0 {
		return StatusCode{}, false
	}

	return New(code, text), true
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case SeeOther:
		return "See Other"
	case NotModified:
		return "Not Modified"
	case TemporaryRedirect:
		return "Temporary Redirect"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return ""
	}
}
