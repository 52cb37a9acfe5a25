package form

import (
	"strings"

	"formapi/internal/model"
	"formapi/internal/pdf"
)

// ValidationError lists the required fields missing from a submission and the
// fields whose text cannot be drawn with the form font.
type ValidationError struct {
	Missing     []string
	Unsupported []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Faltan campos requeridos: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unsupported) > 0 {
		parts = append(parts, "Caracteres no soportados en: "+strings.Join(e.Unsupported, ", "))
	}
	return strings.Join(parts, "; ")
}

// Validate checks the required fields of the layout, in declared order.
// When the reception method is electronic the reception email is required too.
// Every drawn value must be representable in the core font encoding.
func (l *Layout) Validate(sub model.Submission) error {
	var missing []string
	for _, name := range l.Required {
		if !sub.Has(name) {
			missing = append(missing, name)
		}
	}

	electronic := false
	if method, ok := ParseReceptionMethod(sub.Get(FieldReception)); ok && method == ReceptionElectronic {
		electronic = true
		if !sub.Has(FieldReceptionEmail) {
			missing = append(missing, FieldReceptionEmail)
		}
	}

	var unsupported []string
	for _, f := range l.Fields {
		if !pdf.Encodable(sub.Get(f.Name)) {
			unsupported = append(unsupported, f.Name)
		}
	}
	if electronic && !pdf.Encodable(sub.Get(FieldReceptionEmail)) {
		unsupported = append(unsupported, FieldReceptionEmail)
	}

	if len(missing) > 0 || len(unsupported) > 0 {
		return &ValidationError{Missing: missing, Unsupported: unsupported}
	}
	return nil
}
