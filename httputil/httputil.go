package httputil

import "fmt"

const StatusUnknown = "UNKNOWN"

var statusNames = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
}

// StatusName maps a status code to its reason phrase. Codes outside the
// table yield StatusUnknown rather than an error.
func StatusName(code int) string {
	if name, ok := statusNames[code]; ok {
		return name
	}
	return StatusUnknown
}

// ContentType formats a Content-Type header value from a media type and
// a charset. An empty charset yields the bare media type.
func ContentType(mediaType string, charset string) string {
	if charset == "" {
		return mediaType
	}
	return fmt.Sprintf("%s; charset=%s", mediaType, charset)
}
