// Package form holds the declarative layouts of the certificate request forms:
// which submitted field goes where on the template, which fields are required and
// which conditional marks apply.
package form

import (
	"time"

	"formapi/internal/model"
)

const (
	FieldUsage          = "usoCertificacion"
	FieldReception      = "recepcionDocumento"
	FieldReceptionEmail = "correoRecepcion"

	// Mark is the text drawn on a selected checkbox.
	Mark = "X"

	DefaultPlace = "Pedro Vicente Maldonado"
)

// Point is a position in PDF user space (origin bottom-left).
type Point struct {
	X float64
	Y float64
}

// Field maps one submitted value to a fixed position. Default is drawn when the
// value is blank; an empty Default means the field is skipped instead.
type Field struct {
	Name    string
	At      Point
	Default string
}

// Layout describes one form type.
type Layout struct {
	Type     model.FormType
	Template string
	Filename string
	Required []string
	Fields   []Field

	Place Point
	Date  Point

	// Usage is nil for forms without a usage reason block.
	Usage          map[UsageReason]Point
	Reception      map[ReceptionMethod]Point
	ReceptionEmail Point
}

// Stamp carries the values every form prints regardless of the submission.
type Stamp struct {
	Place string
	Date  time.Time
}

var layouts = map[model.FormType]*Layout{
	model.FormGravamen: &gravamen,
	model.FormBusqueda: &busqueda,
}

// Lookup returns the layout registered for the form type.
func Lookup(t model.FormType) (*Layout, bool) {
	l, ok := layouts[t]
	return l, ok
}

// Types lists the known form types in a stable order.
func Types() []model.FormType {
	return []model.FormType{model.FormGravamen, model.FormBusqueda}
}

// Placements turns a submission into drawing instructions. It never fails:
// blank optional fields are skipped and unknown enumeration values draw no mark.
// The result order is fixed: layout fields, place, date, usage mark, reception
// mark, reception email.
func (l *Layout) Placements(sub model.Submission, st Stamp) []model.FieldPlacement {
	out := make([]model.FieldPlacement, 0, len(l.Fields)+5)

	for _, f := range l.Fields {
		text := sub.Get(f.Name)
		if text == "" {
			text = f.Default
		}
		if text == "" {
			continue
		}
		out = append(out, placement(f.Name, f.At, text))
	}

	place := st.Place
	if place == "" {
		place = DefaultPlace
	}
	out = append(out,
		placement("lugar", l.Place, place),
		placement("fechaActual", l.Date, FormatDate(st.Date)),
	)

	if l.Usage != nil {
		if reason, ok := ParseUsageReason(sub.Get(FieldUsage)); ok {
			out = append(out, placement("marcarUso", l.Usage[reason], Mark))
		}
	}

	method, ok := ParseReceptionMethod(sub.Get(FieldReception))
	if !ok {
		return out
	}
	out = append(out, placement("marcarRecepcion", l.Reception[method], Mark))
	if method == ReceptionElectronic {
		if email := sub.Get(FieldReceptionEmail); email != "" {
			out = append(out, placement(FieldReceptionEmail, l.ReceptionEmail, email))
		}
	}
	return out
}

func placement(name string, at Point, text string) model.FieldPlacement {
	return model.FieldPlacement{
		Name:     name,
		X:        at.X,
		Y:        at.Y,
		Text:     text,
		FontSize: model.DefaultFontSize,
	}
}
