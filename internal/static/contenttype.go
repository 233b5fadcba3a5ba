package static

import "strings"

// Media types emitted by the server. Anything that is not HTML is served
// as plain text.
const (
	TypeHTML  = "text/html; charset=utf-8"
	TypePlain = "text/plain; charset=utf-8"
)

// extensionTypes maps filename suffixes to media types. Extension lookup is
// the primary classifier; body sniffing is only the fallback for files
// without a recognized extension.
var extensionTypes = map[string]string{
	".html": TypeHTML,
	".htm":  TypeHTML,
	".txt":  TypePlain,
	".text": TypePlain,
	".md":   TypePlain,
	".css":  TypePlain,
	".csv":  TypePlain,
	".log":  TypePlain,
}

// ContentTypeOf classifies a file by extension, falling back to sniffing
// the body when the extension is unknown.
func ContentTypeOf(path string, body []byte) string {
	ext := strings.ToLower(extensionOf(path))
	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}
	return Sniff(body)
}

// Sniff guesses between HTML and plain text from the body's leading bytes.
//
// After stripping leading whitespace, a case-sensitive "<!DOCTYPE html>" or
// "<html" prefix classifies as HTML; everything else is plain text. This is
// a heuristic: HTML with different doctype casing is misclassified, as is
// text that happens to start with those tokens.
func Sniff(body []byte) string {
	s := trimLeadingSpace(body)
	if hasPrefix(s, "<!DOCTYPE html>") || hasPrefix(s, "<html") {
		return TypeHTML
	}
	return TypePlain
}

func extensionOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[i:]
		case '/', '\\':
			return ""
		}
	}
	return ""
}

func trimLeadingSpace(b []byte) []byte {
	for len(b) > 0 {
		switch b[0] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			b = b[1:]
		default:
			return b
		}
	}
	return b
}

func hasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}
