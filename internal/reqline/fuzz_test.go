package reqline

import (
	"strings"
	"testing"
)

// FuzzScan verifies the scanner never panics and upholds its basic
// invariants on arbitrary byte soup.
func FuzzScan(f *testing.F) {
	f.Add([]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	f.Add([]byte("GET\r\n"))
	f.Add([]byte(""))
	f.Add([]byte("\r\n\r\n"))
	f.Add([]byte("POST /submit HTTP/1.1\nContent-Length: 3\n\nabc"))
	f.Add([]byte{0x00, 0xff, ' ', 0xfe, '\n'})

	f.Fuzz(func(t *testing.T, data []byte) {
		res := Scan(data)
		if res == nil {
			t.Fatal("Scan returned nil")
		}
		if res.Malformed() != (len(res.Tokens) < 2) {
			t.Error("Malformed disagrees with token count")
		}
		if len(res.Tokens) >= 2 && (res.Method == "" || res.Path == "") {
			t.Errorf("two tokens but method=%q path=%q", res.Method, res.Path)
		}
		for _, tok := range res.Tokens {
			if tok == "" {
				t.Error("empty token survived splitting")
			}
			if strings.ContainsAny(tok, " \t\r\n\v\f") {
				t.Errorf("token %q contains whitespace", tok)
			}
		}
	})
}
