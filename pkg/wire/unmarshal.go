package wire

import (
	"bytes"
	"strconv"
)

// UnmarshalResponse parses HTTP/1.1 wire-format data as a response.
//
// Body length determination: Content-Length when present (truncation is an
// error), otherwise all remaining bytes (connection-close semantics, which
// is the only mode shape-serve speaks).
func UnmarshalResponse(data []byte) (*Response, error) {
	p := &scanner{data: data, length: len(data), line: 1}

	version, statusCode, reason, err := p.parseStatusLine()
	if err != nil {
		return nil, err
	}

	headers, err := p.parseHeaders()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBody(headers)
	if err != nil {
		return nil, err
	}

	return &Response{
		Version:    version,
		StatusCode: statusCode,
		Reason:     reason,
		Headers:    headers,
		Body:       body,
	}, nil
}

// scanner walks wire-format bytes directly, no intermediate allocation
// beyond the result strings.
type scanner struct {
	data   []byte
	pos    int
	length int
	line   int // 1-indexed line number for error reporting
}

// parseStatusLine parses "VERSION SP STATUS SP REASON CRLF".
func (p *scanner) parseStatusLine() (version string, statusCode int, reason string, err error) {
	line, ok := p.readLine()
	if !ok {
		return "", 0, "", newParseError("missing status line", p.line)
	}

	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return "", 0, "", newParseError("malformed status line: no version separator", p.line)
	}
	version = string(line[:sp1])

	rest := line[sp1+1:]

	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		// Allow status line with no reason phrase: "HTTP/1.1 200"
		code, convErr := strconv.Atoi(string(rest))
		if convErr != nil {
			return "", 0, "", newParseError("invalid status code: "+string(rest), p.line)
		}
		return version, code, "", nil
	}

	code, convErr := strconv.Atoi(string(rest[:sp2]))
	if convErr != nil {
		return "", 0, "", newParseError("invalid status code: "+string(rest[:sp2]), p.line)
	}
	reason = string(rest[sp2+1:])

	return version, code, reason, nil
}

// parseHeaders parses header lines until empty line (CRLF CRLF).
func (p *scanner) parseHeaders() (Headers, error) {
	headers := make(Headers, 0, 8)

	for {
		if p.pos >= p.length {
			// End of data without empty line — headers section is complete
			return headers, nil
		}

		// Check for empty line (end of headers)
		if p.data[p.pos] == '\r' && p.pos+1 < p.length && p.data[p.pos+1] == '\n' {
			p.pos += 2
			p.line++
			return headers, nil
		}
		if p.data[p.pos] == '\n' {
			p.pos++
			p.line++
			return headers, nil
		}

		line, ok := p.readLine()
		if !ok {
			return headers, nil
		}

		// Parse "Key: Value"
		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, newParseError("malformed header line (no colon): "+string(line), p.line)
		}

		key := string(line[:colon])
		value := string(trimOWS(line[colon+1:]))
		headers = append(headers, Header{Key: key, Value: value})
	}
}

// parseBody reads the message body per the headers.
func (p *scanner) parseBody(headers Headers) ([]byte, error) {
	cl := headers.ContentLength()
	if cl >= 0 {
		if p.pos+int(cl) > p.length {
			return nil, newParseError("body truncated: declared "+strconv.FormatInt(cl, 10)+" bytes", p.line)
		}
		body := make([]byte, cl)
		copy(body, p.data[p.pos:p.pos+int(cl)])
		p.pos += int(cl)
		return body, nil
	}

	// No Content-Length: remaining bytes are body
	if p.pos >= p.length {
		return nil, nil
	}
	body := make([]byte, p.length-p.pos)
	copy(body, p.data[p.pos:])
	p.pos = p.length
	return body, nil
}

// readLine reads bytes until CRLF or LF, advancing pos.
// Returns the line content (without line ending); ok is false at end of input.
func (p *scanner) readLine() ([]byte, bool) {
	if p.pos >= p.length {
		return nil, false
	}

	start := p.pos
	for p.pos < p.length {
		if p.data[p.pos] == '\r' && p.pos+1 < p.length && p.data[p.pos+1] == '\n' {
			line := p.data[start:p.pos]
			p.pos += 2
			p.line++
			return line, true
		}
		if p.data[p.pos] == '\n' {
			line := p.data[start:p.pos]
			p.pos++
			p.line++
			return line, true
		}
		p.pos++
	}

	// No line ending — return remaining data
	return p.data[start:p.pos], true
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of b.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
