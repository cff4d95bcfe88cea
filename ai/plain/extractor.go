// Copyright 2025 Elysia Education
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package plain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/elysia-edu/essayd/ai"
)

// ErrUnsupportedFormat indicates the uploaded content is not a recognized
// text format.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrInvalidEncoding indicates the content is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// maxUploadBytes caps the accepted upload size at 1 MiB. Essays are short
// documents; anything larger is almost certainly a mistaken upload.
const maxUploadBytes = 1 << 20

// Extractor implements ai.TextExtractor for plain-text and markdown uploads.
// Binary formats (PDF, DOCX) are out of scope and return ErrUnsupportedFormat.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a plain-text extractor.
//
// Returns ai.TextExtractor interface to enforce abstraction.
func NewExtractor() ai.TextExtractor {
	return &Extractor{
		logger: slog.Default().With("component", "plain-extractor"),
	}
}

// Extract returns the text contained in content, normalized to Unix line
// endings with surrounding whitespace trimmed.
func (e *Extractor) Extract(ctx context.Context, content []byte, fileName, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(content) > maxUploadBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrUnsupportedFormat, len(content), maxUploadBytes)
	}

	if !supported(fileName, contentType) {
		e.logger.Debug("rejecting upload", "file", fileName, "content_type", contentType)
		return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedFormat, fileName, contentType)
	}

	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	return strings.TrimSpace(text), nil
}

// supported reports whether the file name or content type identifies a
// text format this extractor handles. When both hints are empty the
// content is assumed to be plain text.
func supported(fileName, contentType string) bool {
	if fileName == "" && contentType == "" {
		return true
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".md", ".markdown", ".text":
		return true
	}

	mediaType := contentType
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	switch strings.TrimSpace(strings.ToLower(mediaType)) {
	case "text/plain", "text/markdown":
		return true
	}

	return false
}
