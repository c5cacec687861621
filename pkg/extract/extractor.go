// Package extract implements the fixed per-type content-extraction table for
// staged files. Extraction is genuine for images (base64 for transport) and
// plain text (UTF-8); the two Office Open XML types get a stub string so the
// model at least knows the file exists; everything else is unsupported.
package extract

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// FileKind is the closed set of staging categories. Classification is a
// tagged variant rather than scattered string checks so the dispatch in
// Extract stays exhaustive.
type FileKind int

const (
	KindUnsupported FileKind = iota
	KindImage
	KindText
	KindDocumentStub
)

const (
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypePptx = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

const UnsupportedPlaceholder = "File type not supported for content extraction."

// Result carries the outcome of one extraction. Content is never empty:
// unsupported files get an explanatory placeholder.
type Result struct {
	Content     string
	IsSupported bool
}

// Classify maps a MIME type onto its staging category. Parameters after a
// semicolon (charset etc.) are ignored.
func Classify(mimeType string) FileKind {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}

	switch {
	case strings.HasPrefix(mt, "image/"):
		return KindImage
	case strings.HasPrefix(mt, "text/"):
		return KindText
	case mt == MimeTypeDocx, mt == MimeTypePptx:
		return KindDocumentStub
	default:
		return KindUnsupported
	}
}

// Extract produces the transport content for one staged file.
func Extract(name, mimeType string, data []byte) Result {
	switch Classify(mimeType) {
	case KindImage:
		return Result{
			Content:     base64.StdEncoding.EncodeToString(data),
			IsSupported: true,
		}
	case KindText:
		return Result{
			Content:     string(data),
			IsSupported: true,
		}
	case KindDocumentStub:
		kind := "DOCX"
		if strings.Contains(strings.ToLower(mimeType), "presentationml") {
			kind = "PPTX"
		}
		return Result{
			Content:     fmt.Sprintf("[Content from %s file '%s' would be extracted here. The AI is aware this file has been uploaded.]", kind, name),
			IsSupported: true,
		}
	default:
		return Result{
			Content:     UnsupportedPlaceholder,
			IsSupported: false,
		}
	}
}
