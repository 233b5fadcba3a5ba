package reqline

// String interning for common HTTP tokens.
//
// The Go compiler optimizes map lookups with string keys built from the
// scanned token, so internMethod is zero-extra-alloc for known methods.

var methods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST",
	"PUT": "PUT", "DELETE": "DELETE", "CONNECT": "CONNECT",
	"OPTIONS": "OPTIONS", "TRACE": "TRACE", "PATCH": "PATCH",
}

var versions = map[string]string{
	"HTTP/1.0": "HTTP/1.0", "HTTP/1.1": "HTTP/1.1",
	"HTTP/2": "HTTP/2", "HTTP/2.0": "HTTP/2.0",
}

// internMethod returns an interned string for known HTTP methods.
func internMethod(s string) string {
	if m, ok := methods[s]; ok {
		return m
	}
	return s
}

// internVersion returns an interned string for known HTTP versions.
func internVersion(s string) string {
	if v, ok := versions[s]; ok {
		return v
	}
	return s
}
