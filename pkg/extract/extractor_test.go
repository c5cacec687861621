package extract

import (
	"encoding/base64"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		want     FileKind
	}{
		{
			name:     "png image",
			mimeType: "image/png",
			want:     KindImage,
		},
		{
			name:     "jpeg image",
			mimeType: "image/jpeg",
			want:     KindImage,
		},
		{
			name:     "plain text",
			mimeType: "text/plain",
			want:     KindText,
		},
		{
			name:     "markdown with charset parameter",
			mimeType: "text/markdown; charset=utf-8",
			want:     KindText,
		},
		{
			name:     "docx",
			mimeType: MimeTypeDocx,
			want:     KindDocumentStub,
		},
		{
			name:     "pptx",
			mimeType: MimeTypePptx,
			want:     KindDocumentStub,
		},
		{
			name:     "uppercase type is normalized",
			mimeType: "TEXT/PLAIN",
			want:     KindText,
		},
		{
			name:     "pdf is unsupported",
			mimeType: "application/pdf",
			want:     KindUnsupported,
		},
		{
			name:     "empty mime type",
			mimeType: "",
			want:     KindUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.mimeType); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	imageData := []byte{0x89, 0x50, 0x4e, 0x47}

	tests := []struct {
		name          string
		fileName      string
		mimeType      string
		data          []byte
		wantContent   string
		wantSupported bool
	}{
		{
			name:          "image is base64 encoded",
			fileName:      "diagram.png",
			mimeType:      "image/png",
			data:          imageData,
			wantContent:   base64.StdEncoding.EncodeToString(imageData),
			wantSupported: true,
		},
		{
			name:          "text passes through verbatim",
			fileName:      "notes.txt",
			mimeType:      "text/plain",
			data:          []byte("line one\nline two"),
			wantContent:   "line one\nline two",
			wantSupported: true,
		},
		{
			name:          "docx gets a stub naming the file",
			fileName:      "essay.docx",
			mimeType:      MimeTypeDocx,
			data:          []byte("ignored"),
			wantContent:   "[Content from DOCX file 'essay.docx' would be extracted here. The AI is aware this file has been uploaded.]",
			wantSupported: true,
		},
		{
			name:          "pptx stub says PPTX",
			fileName:      "slides.pptx",
			mimeType:      MimeTypePptx,
			data:          []byte("ignored"),
			wantContent:   "[Content from PPTX file 'slides.pptx' would be extracted here. The AI is aware this file has been uploaded.]",
			wantSupported: true,
		},
		{
			name:          "unsupported type gets the placeholder",
			fileName:      "archive.zip",
			mimeType:      "application/zip",
			data:          []byte("ignored"),
			wantContent:   UnsupportedPlaceholder,
			wantSupported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.fileName, tt.mimeType, tt.data)
			if got.Content != tt.wantContent {
				t.Errorf("Extract() content = %q, want %q", got.Content, tt.wantContent)
			}
			if got.IsSupported != tt.wantSupported {
				t.Errorf("Extract() supported = %v, want %v", got.IsSupported, tt.wantSupported)
			}
		})
	}
}
