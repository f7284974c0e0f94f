package chat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUploadedFileTextInlinesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("meeting at noon"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, ok := LoadUploadedFile(NewSeededSource(1), path)
	if !ok {
		t.Fatalf("txt file rejected")
	}
	if f.Name != "notes.txt" {
		t.Fatalf("name = %q", f.Name)
	}
	if f.Type != "text/plain" {
		t.Fatalf("type = %q", f.Type)
	}
	if f.Size != int64(len("meeting at noon")) {
		t.Fatalf("size = %d", f.Size)
	}
	if f.Content != "meeting at noon" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.ID == "" {
		t.Fatalf("expected an id")
	}
}

func TestLoadUploadedFilePDFMetadataOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, ok := LoadUploadedFile(NewSeededSource(1), path)
	if !ok {
		t.Fatalf("pdf file rejected")
	}
	if f.Type != "application/pdf" {
		t.Fatalf("type = %q", f.Type)
	}
	if f.Content != "" {
		t.Fatalf("pdf content was decoded: %q", f.Content)
	}
}

func TestLoadUploadedFileDocxMetadataOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.docx")
	if err := os.WriteFile(path, []byte("PK fake zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, ok := LoadUploadedFile(NewSeededSource(1), path)
	if !ok {
		t.Fatalf("docx file rejected")
	}
	if f.Type != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Fatalf("type = %q", f.Type)
	}
	if f.Content != "" {
		t.Fatalf("docx content was decoded")
	}
}

func TestLoadUploadedFileRejectsUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	if err := os.WriteFile(path, []byte("not a doc"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := LoadUploadedFile(NewSeededSource(1), path); ok {
		t.Fatalf("unsupported extension accepted")
	}
}

func TestLoadUploadedFileRejectsMissingAndDirs(t *testing.T) {
	dir := t.TempDir()
	if _, ok := LoadUploadedFile(NewSeededSource(1), filepath.Join(dir, "absent.txt")); ok {
		t.Fatalf("missing file accepted")
	}
	sub := filepath.Join(dir, "folder.txt")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, ok := LoadUploadedFile(NewSeededSource(1), sub); ok {
		t.Fatalf("directory accepted")
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{2621440, "2.5 MB"},
		{1073741824, "1 GB"},
	}
	for _, c := range cases {
		if got := FormatFileSize(c.in); got != c.want {
			t.Fatalf("FormatFileSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
