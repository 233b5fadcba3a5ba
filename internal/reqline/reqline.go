// Package reqline implements best-effort request-line scanning over raw
// socket bytes. It never fails on malformed input: it extracts what it can
// and reports issues as warnings.
//
// The scanner looks only at the first line of the buffer (up to the first
// line terminator, or the whole buffer when none is present) and splits it
// on ASCII whitespace. Bytes outside the ASCII method/path tokens are
// treated as opaque; there is no text decoding of the buffer and invalid
// byte sequences cannot raise an error. Method names, path syntax and the
// HTTP version token are not validated here — routing decisions belong to
// the caller.
package reqline

// Result holds the outcome of scanning one request line.
type Result struct {
	Method   string   // first token, "" if none
	Path     string   // second token, "" if none
	Version  string   // third token, "" if none
	Tokens   []string // all whitespace-separated tokens, in order
	Warnings []string // human-readable notes on anything odd
}

// Malformed reports whether the request line carried fewer than the two
// tokens (method and path) needed to route it.
func (r *Result) Malformed() bool {
	return len(r.Tokens) < 2
}

// Scan extracts the request line from raw request bytes.
func Scan(data []byte) *Result {
	res := &Result{}

	if len(data) == 0 {
		res.Warnings = append(res.Warnings, "empty input")
		return res
	}

	line := firstLine(data)
	res.Tokens = asciiFields(line)

	switch len(res.Tokens) {
	case 0:
		res.Warnings = append(res.Warnings, "empty request line")
	case 1:
		res.Method = internMethod(res.Tokens[0])
		res.Warnings = append(res.Warnings, "request line has only method, no path")
	case 2:
		res.Method = internMethod(res.Tokens[0])
		res.Path = res.Tokens[1]
		res.Warnings = append(res.Warnings, "missing HTTP version in request line")
	default:
		res.Method = internMethod(res.Tokens[0])
		res.Path = res.Tokens[1]
		res.Version = internVersion(res.Tokens[2])
	}

	return res
}

// firstLine returns data up to (not including) the first LF, with a
// trailing CR stripped. Without a terminator the whole buffer is the line.
func firstLine(data []byte) []byte {
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' {
			line := data[:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			return line
		}
	}
	return data
}

// asciiFields splits b on runs of ASCII whitespace, discarding empty tokens.
// High bytes pass through into tokens untouched.
func asciiFields(b []byte) []string {
	var fields []string
	start := -1
	for i := 0; i < len(b); i++ {
		if isASCIISpace(b[i]) {
			if start >= 0 {
				fields = append(fields, string(b[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, string(b[start:]))
	}
	return fields
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
