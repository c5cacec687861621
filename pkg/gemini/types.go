package gemini

// Wire types for the generativelanguage.googleapis.com v1beta
// generateContent endpoint. Only the fields this application reads or
// writes are modeled.

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

// Part is either text or inline binary data, never both.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

// GoogleSearch is the search-augmentation capability. Its presence in the
// request's tools enables grounding; it carries no configuration.
type GoogleSearch struct{}

type Tool struct {
	GoogleSearch *GoogleSearch `json:"googleSearch,omitempty"`
}

type GenerateRequest struct {
	Contents          []*Content `json:"contents"`
	SystemInstruction *Content   `json:"systemInstruction,omitempty"`
	Tools             []*Tool    `json:"tools,omitempty"`
}

type GroundingWeb struct {
	Uri   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingChunk references one consulted source. Only chunks with a Web
// reference become citations; other chunk kinds are ignored.
type GroundingChunk struct {
	Web *GroundingWeb `json:"web,omitempty"`
}

type GroundingMetadata struct {
	GroundingChunks []*GroundingChunk `json:"groundingChunks,omitempty"`
}

type Candidate struct {
	Content           *Content           `json:"content"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GenerateResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

// Text concatenates the text parts of the first candidate, the generated
// answer as the backend produced it.
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

// Source is a normalized citation: the display-ready shape of a web
// grounding chunk.
type Source struct {
	Uri   string `json:"uri"`
	Title string `json:"title"`
}

const untitledSource = "Untitled Source"

// Sources filters the first candidate's grounding chunks to web references
// and normalizes them, preserving backend order. Chunks without a title get
// a fixed fallback label.
func (r *GenerateResponse) Sources() []Source {
	sources := make([]Source, 0)
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range r.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = untitledSource
		}
		sources = append(sources, Source{Uri: chunk.Web.Uri, Title: title})
	}
	return sources
}
