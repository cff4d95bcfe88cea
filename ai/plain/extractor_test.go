package plain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	extractor := NewExtractor()

	text, err := extractor.Extract(context.Background(), []byte("  Hello essay world.\r\nSecond line.  "), "essay.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "Hello essay world.\nSecond line.", text)
}

func TestExtract_NoHintsAssumesText(t *testing.T) {
	extractor := NewExtractor()

	text, err := extractor.Extract(context.Background(), []byte("raw body"), "", "")
	require.NoError(t, err)
	assert.Equal(t, "raw body", text)
}

func TestExtract_FormatDetection(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name        string
		fileName    string
		contentType string
		wantErr     bool
	}{
		{name: "markdown extension", fileName: "essay.md", wantErr: false},
		{name: "markdown media type", contentType: "text/markdown; charset=utf-8", wantErr: false},
		{name: "uppercase extension", fileName: "ESSAY.TXT", wantErr: false},
		{name: "pdf extension", fileName: "essay.pdf", wantErr: true},
		{name: "docx media type", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(context.Background(), []byte("content"), tt.fileName, tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExtract_InvalidEncoding(t *testing.T) {
	extractor := NewExtractor()

	_, err := extractor.Extract(context.Background(), []byte{0xff, 0xfe, 0x00}, "essay.txt", "")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestExtract_SizeLimit(t *testing.T) {
	extractor := NewExtractor()

	huge := []byte(strings.Repeat("a", maxUploadBytes+1))
	_, err := extractor.Extract(context.Background(), huge, "essay.txt", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
