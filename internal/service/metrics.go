package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"formapi/internal/model"
)

// Metrics counts generation outcomes per form type.
type Metrics struct {
	generated *prometheus.CounterVec
}

// NewMetrics registers the form counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forms_generated_total",
				Help: "Form generation attempts by form type and outcome.",
			},
			[]string{"form", "status"},
		),
	}
	if err := reg.Register(m.generated); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(formType model.FormType, status model.GenerationStatus) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(string(formType), string(status)).Inc()
}
