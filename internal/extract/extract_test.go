package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExtractTextFromBytes_PlainTextPassthrough(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("Experienced engineer..."), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Experienced engineer..." {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestExtractTextFromBytes_CorruptPDFFails(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("this is not a pdf"), "application/pdf", "resume.pdf")
	if err == nil {
		t.Fatal("expected error for corrupt pdf bytes")
	}
	if errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("corrupt pdf should be an extraction failure, not unsupported type: %v", err)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestExtractTextFromBytes_UnsupportedMime(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("<html></html>"), "text/html", "resume.html")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	docxZip := buildZip(t, "word/document.xml", "<w:document/>")

	tests := []struct {
		name     string
		mime     string
		fileName string
		data     []byte
		want     string
	}{
		{name: "pdf with params", mime: "application/pdf; charset=binary", fileName: "a.pdf", want: mimePDF},
		{name: "docx direct", mime: mimeDOCX, fileName: "a.docx", want: mimeDOCX},
		{name: "zip wrapping docx", mime: "application/zip", fileName: "a.bin", data: docxZip, want: mimeDOCX},
		{name: "octet stream by extension", mime: "application/octet-stream", fileName: "a.docx", want: mimeDOCX},
		{name: "plain zip stays zip", mime: "application/zip", fileName: "a.zip", data: buildZip(t, "notes.txt", "hi"), want: "application/zip"},
		{name: "txt by extension", mime: "", fileName: "a.txt", want: mimePlain},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeMimeType(tt.mime, tt.fileName, tt.data); got != tt.want {
				t.Fatalf("normalizeMimeType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:body><w:p><w:r><w:t>Experienced engineer</w:t></w:r></w:p><w:p><w:r><w:t>Go, Python</w:t></w:r></w:p></w:body>`
	got := stripDocxXML(raw)
	if !strings.Contains(got, "Experienced engineer") || !strings.Contains(got, "Go, Python") {
		t.Fatalf("unexpected strip output: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph break, got %q", got)
	}
}

func buildZip(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
