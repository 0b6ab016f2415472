package preview

import (
	"io"
	"os"
	"unicode/utf8"

	apperrors "file-wrangler/internal/app/errors"
)

// DefaultMaxBytes caps how much of a file is read for display.
const DefaultMaxBytes = 10 * 1024

// FileContent is a capped, display-ready view of one file. Binary content
// is flagged instead of returned so callers can degrade gracefully.
type FileContent struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	Size      int64  `json:"size"`
	Encoding  string `json:"encoding"`
	IsBinary  bool   `json:"is_binary"`
	Truncated bool   `json:"truncated"`
}

// Read returns up to maxBytes of the file at path. Non-UTF-8 content comes
// back with IsBinary set and no content; files over the cap come back
// truncated.
func Read(path string, maxBytes int64) (*FileContent, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "stat %q", path)
	}
	if info.IsDir() {
		return nil, apperrors.NewKindf(apperrors.KindPathNotFound, "%q is a directory, not a file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	readSize := info.Size()
	truncated := false
	if readSize > maxBytes {
		readSize = maxBytes
		truncated = true
	}

	buf := make([]byte, readSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, apperrors.Wrapf(err, "read %q", path)
	}
	buf = buf[:n]
	if truncated {
		buf = trimPartialRune(buf)
	}

	content := &FileContent{
		Path:      path,
		Size:      info.Size(),
		Encoding:  "utf-8",
		Truncated: truncated,
	}

	if !utf8.Valid(buf) {
		content.IsBinary = true
		content.Encoding = "binary"
		return content, nil
	}

	content.Content = string(buf)
	return content, nil
}

// trimPartialRune drops the leading bytes of a multi-byte rune the read cap
// cut in half, so a truncated text file is not mistaken for binary.
func trimPartialRune(buf []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(buf); i++ {
		start := len(buf) - i
		if !utf8.RuneStart(buf[start]) {
			continue
		}
		if r, size := utf8.DecodeRune(buf[start:]); r == utf8.RuneError && size == 1 {
			return buf[:start]
		}
		break
	}
	return buf
}
