package wire

// Canonical reason phrases for the status codes an origin server actually
// emits, plus the usual neighbors. Interned so repeated responses share
// one string.
var reasons = map[int]string{
	200: "OK",
	201: "Created",
	202: "Accepted",
	204: "No Content",
	301: "Moved Permanently",
	302: "Found",
	304: "Not Modified",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	409: "Conflict",
	410: "Gone",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}

// ReasonPhrase returns the canonical reason phrase for a status code,
// or empty string for unknown codes.
func ReasonPhrase(code int) string {
	return reasons[code]
}
