package chat

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	mimeText = "text/plain"
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// maxInlineContent caps how much decoded text is stored on an attachment.
const maxInlineContent = 1 << 20

func mediaTypeFor(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return mimeText, true
	case ".pdf":
		return mimePDF, true
	case ".docx":
		return mimeDocx, true
	default:
		return "", false
	}
}

// LoadUploadedFile stats a path and builds the attachment descriptor.
// Unsupported extensions return ok=false and are skipped by callers, not
// surfaced as errors. Plain text content is decoded inline; PDF and DOCX
// keep metadata only. A read failure on a text file leaves Content empty
// but still attaches the file.
func LoadUploadedFile(src RandomSource, path string) (UploadedFile, bool) {
	mediaType, ok := mediaTypeFor(path)
	if !ok {
		return UploadedFile{}, false
	}
	st, err := os.Stat(path)
	if err != nil || st.IsDir() {
		return UploadedFile{}, false
	}

	f := UploadedFile{
		ID:   GenerateID(src),
		Name: filepath.Base(path),
		Size: st.Size(),
		Type: mediaType,
	}
	if mediaType == mimeText {
		if b, err := os.ReadFile(path); err == nil && utf8.Valid(b) {
			if len(b) > maxInlineContent {
				b = b[:maxInlineContent]
			}
			f.Content = string(b)
		}
	}
	return f, true
}

// FormatFileSize renders a human-readable byte count: up to two decimals,
// 1024-based units.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + sizes[i]
}
