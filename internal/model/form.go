package model

import "time"

// FormType identifies one of the fixed certificate request forms.
type FormType string

const (
	FormGravamen FormType = "gravamen"
	FormBusqueda FormType = "busqueda"
)

// DefaultFontSize is used when a placement does not set its own size.
const DefaultFontSize = 12

// FieldPlacement is a single text drawing instruction on the first page of a template.
// Coordinates are PDF user space points with the origin at the bottom-left corner.
type FieldPlacement struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
}

// Size returns the font size, falling back to DefaultFontSize.
func (p FieldPlacement) Size() float64 {
	if p.FontSize <= 0 {
		return DefaultFontSize
	}
	return p.FontSize
}

// GeneratedDocument is a filled form ready to be sent as an attachment.
type GeneratedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

// GenerationStatus is the outcome recorded for one generation attempt.
type GenerationStatus string

const (
	StatusSuccess          GenerationStatus = "success"
	StatusValidationFailed GenerationStatus = "validation_failed"
	StatusTemplateError    GenerationStatus = "template_error"
	StatusRenderError      GenerationStatus = "render_error"
)

// GenerationEvent is the audit record of one generation attempt.
// It never carries the submitted values.
type GenerationEvent struct {
	ID            string           `json:"id"`
	RequestID     string           `json:"request_id"`
	FormType      FormType         `json:"form_type"`
	Status        GenerationStatus `json:"status"`
	MissingFields []string         `json:"missing_fields,omitempty"`
	DurationMs    int64            `json:"duration_ms"`
	CreatedAt     time.Time        `json:"created_at"`
}
