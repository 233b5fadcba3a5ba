// Package static resolves request paths to files under a document root and
// classifies their content type.
package static

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Resolver maps request paths to files under Root.
//
// Resolution is plain string concatenation of Root and the request path.
// Without Jail this permits ".." segments to escape the root — a known
// gap, kept visible rather than patched silently. Set Jail to enforce
// containment.
type Resolver struct {
	Root string // document root directory, e.g. "public"
	Jail bool   // reject resolved paths that escape Root
}

// File is one successfully loaded document.
type File struct {
	Path        string // filesystem path the body came from
	Body        []byte // complete file contents
	ContentType string // classified media type
}

// Resolve maps a request path to a candidate filesystem path.
// "/" maps to "/index.html" before concatenation.
func (r *Resolver) Resolve(reqPath string) string {
	if reqPath == "/" {
		reqPath = "/index.html"
	}
	return r.Root + reqPath
}

// Load resolves reqPath and reads the whole file into memory.
//
// Any failure (missing file, permission denied, directory, non-text
// content, jail escape) comes back as an error for the caller to log;
// callers collapse all of them into a single not-found answer for the
// client. There is no size limit and no streaming — large files are an
// accepted limitation.
func (r *Resolver) Load(reqPath string) (*File, error) {
	path := r.Resolve(reqPath)

	if r.Jail {
		if err := r.contain(path); err != nil {
			return nil, err
		}
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("static: %s: not valid text", path)
	}

	return &File{
		Path:        path,
		Body:        body,
		ContentType: ContentTypeOf(path, body),
	}, nil
}

// contain verifies that the cleaned candidate path stays under Root.
func (r *Resolver) contain(path string) error {
	rootAbs, err := filepath.Abs(r.Root)
	if err != nil {
		return err
	}
	pathAbs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return err
	}
	if pathAbs != rootAbs && !strings.HasPrefix(pathAbs, rootAbs+string(filepath.Separator)) {
		return fmt.Errorf("static: %s escapes document root: %w", path, fs.ErrNotExist)
	}
	return nil
}
