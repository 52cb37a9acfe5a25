package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"formapi/internal/form"
	"formapi/internal/model"
	"formapi/internal/pdf"
	pdfMocks "formapi/internal/pdf/mocks"
	repoMocks "formapi/internal/repository/mocks"
	"formapi/internal/storage"
	storeMocks "formapi/internal/storage/mocks"
)

var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func gravamenSubmission() model.Submission {
	return model.Submission{
		"nombre":              "Ana Cevallos",
		"cedulaFacturacion":   "1711111111",
		"direccion":           "Calle Quito",
		"telefono":            "0987654321",
		"apellidos":           "Cevallos Ortiz",
		"cedulaCertificacion": "1711111111",
		"lugarInmueble":       "Lote 4",
		"usoCertificacion":    "Otro",
		"especifiqueUso":      "Venta",
		"recepcionDocumento":  "Presencial",
		"cedulaSolicitante":   "1711111111",
	}
}

func busquedaSubmission() model.Submission {
	return model.Submission{
		"nombre":                 "Luis Andrade",
		"cedulaFacturacion":      "1722222222",
		"direccion":              "Av. 10 de Agosto",
		"telefono":               "022000000",
		"nombresCompletos":       "Luis Andrade",
		"cedula":                 "1722222222",
		"estadoCivil":            "Casado",
		"nombresSolicitante":     "Luis Andrade",
		"cedulaSolicitante":      "1722222222",
		"estadoCivilSolicitante": "Casado",
		"declaracionUso":         "Crédito",
		"recepcionDocumento":     "Presencial",
	}
}

func hasText(ps []model.FieldPlacement, x, y float64, text string) bool {
	for _, p := range ps {
		if p.X == x && p.Y == y && p.Text == text {
			return true
		}
	}
	return false
}

func hasName(ps []model.FieldPlacement, name string) bool {
	for _, p := range ps {
		if p.Name == name {
			return true
		}
	}
	return false
}

type fixture struct {
	store    *storeMocks.MockTemplateStore
	renderer *pdfMocks.MockRenderer
	audit    *repoMocks.MockGenerationRepository
	reg      *prometheus.Registry
	svc      FormService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    new(storeMocks.MockTemplateStore),
		renderer: new(pdfMocks.MockRenderer),
		audit:    new(repoMocks.MockGenerationRepository),
		reg:      prometheus.NewRegistry(),
	}
	metrics, err := NewMetrics(f.reg)
	require.NoError(t, err)

	f.svc = NewFormService(f.store, f.renderer, Options{
		Audit:   f.audit,
		Now:     func() time.Time { return fixedNow },
		Metrics: metrics,
	})
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.store.AssertExpectations(t)
	f.renderer.AssertExpectations(t)
	f.audit.AssertExpectations(t)
}

func auditStatus(status model.GenerationStatus) interface{} {
	return mock.MatchedBy(func(ev *model.GenerationEvent) bool {
		return ev.Status == status && ev.ID != ""
	})
}

func TestFormService_Generate(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	tmpl := []byte("%PDF-template")
	rendered := []byte("%PDF-filled")

	tests := []struct {
		name       string
		formType   model.FormType
		sub        func() model.Submission
		setupMocks func(f *fixture)
		wantErr    error
		wantStatus model.GenerationStatus
		checkDoc   func(t *testing.T, doc *model.GeneratedDocument)
	}{
		{
			name:     "gravamen with usage Otro",
			formType: model.FormGravamen,
			sub:      gravamenSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "2.pdf").Return(tmpl, nil)
				f.renderer.On("Render", mock.Anything, tmpl, mock.MatchedBy(func(ps []model.FieldPlacement) bool {
					return hasText(ps, 220, 180, form.Mark) &&
						!hasText(ps, 220, 296, form.Mark) &&
						!hasText(ps, 220, 260, form.Mark) &&
						!hasText(ps, 220, 221, form.Mark) &&
						hasText(ps, 340, 210, "14 de octubre de 2026") &&
						hasText(ps, 400, 225, form.DefaultPlace)
				})).Return(rendered, nil)
				f.audit.On("Create", mock.Anything, mock.MatchedBy(func(ev *model.GenerationEvent) bool {
					return ev.Status == model.StatusSuccess &&
						ev.RequestID == "req-1" &&
						ev.FormType == model.FormGravamen &&
						ev.CreatedAt.Equal(fixedNow)
				})).Return(nil)
			},
			wantStatus: model.StatusSuccess,
			checkDoc: func(t *testing.T, doc *model.GeneratedDocument) {
				assert.Equal(t, "Formulario_Gravamen.pdf", doc.Filename)
				assert.Equal(t, "application/pdf", doc.ContentType)
				assert.Equal(t, rendered, doc.Content)
			},
		},
		{
			name:     "busqueda presencial",
			formType: model.FormBusqueda,
			sub:      busquedaSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "1.pdf").Return(tmpl, nil)
				f.renderer.On("Render", mock.Anything, tmpl, mock.MatchedBy(func(ps []model.FieldPlacement) bool {
					return hasText(ps, 161, 183, form.Mark) &&
						!hasText(ps, 161, 143, form.Mark) &&
						!hasName(ps, form.FieldReceptionEmail)
				})).Return(rendered, nil)
				f.audit.On("Create", mock.Anything, auditStatus(model.StatusSuccess)).Return(nil)
			},
			wantStatus: model.StatusSuccess,
			checkDoc: func(t *testing.T, doc *model.GeneratedDocument) {
				assert.Equal(t, "Formulario_Busqueda.pdf", doc.Filename)
			},
		},
		{
			name:     "validation error skips template and renderer",
			formType: model.FormBusqueda,
			sub: func() model.Submission {
				s := busquedaSubmission()
				delete(s, "cedula")
				s["recepcionDocumento"] = "Electrónico"
				return s
			},
			setupMocks: func(f *fixture) {
				f.audit.On("Create", mock.Anything, mock.MatchedBy(func(ev *model.GenerationEvent) bool {
					return ev.Status == model.StatusValidationFailed &&
						assert.ObjectsAreEqual([]string{"cedula", "correoRecepcion"}, ev.MissingFields)
				})).Return(nil)
			},
			wantErr:    &form.ValidationError{},
			wantStatus: model.StatusValidationFailed,
		},
		{
			name:     "template not found",
			formType: model.FormGravamen,
			sub:      gravamenSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "2.pdf").
					Return(nil, fmt.Errorf("%w: pdfs/2.pdf", storage.ErrTemplateNotFound))
				f.audit.On("Create", mock.Anything, auditStatus(model.StatusTemplateError)).Return(nil)
			},
			wantErr:    storage.ErrTemplateNotFound,
			wantStatus: model.StatusTemplateError,
		},
		{
			name:     "corrupt template",
			formType: model.FormGravamen,
			sub:      gravamenSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "2.pdf").Return(tmpl, nil)
				f.renderer.On("Render", mock.Anything, tmpl, mock.Anything).
					Return(nil, fmt.Errorf("%w: bad xref", pdf.ErrTemplateParse))
				f.audit.On("Create", mock.Anything, auditStatus(model.StatusTemplateError)).Return(nil)
			},
			wantErr:    pdf.ErrTemplateParse,
			wantStatus: model.StatusTemplateError,
		},
		{
			name:     "render error",
			formType: model.FormBusqueda,
			sub:      busquedaSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "1.pdf").Return(tmpl, nil)
				f.renderer.On("Render", mock.Anything, tmpl, mock.Anything).
					Return(nil, fmt.Errorf("%w: write failed", pdf.ErrRender))
				f.audit.On("Create", mock.Anything, auditStatus(model.StatusRenderError)).Return(nil)
			},
			wantErr:    pdf.ErrRender,
			wantStatus: model.StatusRenderError,
		},
		{
			name:     "audit failure does not fail the request",
			formType: model.FormBusqueda,
			sub:      busquedaSubmission,
			setupMocks: func(f *fixture) {
				f.store.On("Read", mock.Anything, "1.pdf").Return(tmpl, nil)
				f.renderer.On("Render", mock.Anything, tmpl, mock.Anything).Return(rendered, nil)
				f.audit.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			wantStatus: model.StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMocks(f)

			doc, err := f.svc.Generate(ctx, tt.formType, tt.sub())

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				require.NotNil(t, doc)
				if tt.checkDoc != nil {
					tt.checkDoc(t, doc)
				}
			case *form.ValidationError:
				var verr *form.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Nil(t, doc)
			default:
				assert.ErrorIs(t, err, want)
				assert.Nil(t, doc)
			}

			count := testutil.ToFloat64(f.svc.(*formService).metrics.generated.WithLabelValues(string(tt.formType), string(tt.wantStatus)))
			assert.Equal(t, float64(1), count)
			f.assertExpectations(t)
		})
	}
}

func TestFormService_UnknownForm(t *testing.T) {
	f := newFixture(t)
	doc, err := f.svc.Generate(context.Background(), "certificado", model.Submission{})
	assert.ErrorIs(t, err, ErrUnknownForm)
	assert.Nil(t, doc)
	f.assertExpectations(t)
}

func TestFormService_AuditInsertIsBounded(t *testing.T) {
	store := new(storeMocks.MockTemplateStore)
	renderer := new(pdfMocks.MockRenderer)
	audit := new(repoMocks.MockGenerationRepository)
	svc := NewFormService(store, renderer, Options{
		Audit:        audit,
		AuditTimeout: 50 * time.Millisecond,
		Now:          func() time.Time { return fixedNow },
	})

	// The request context is already canceled by the time the insert runs.
	ctx, cancel := context.WithCancel(WithRequestID(context.Background(), "req-9"))
	store.On("Read", mock.Anything, "1.pdf").Return([]byte("t"), nil)
	renderer.On("Render", mock.Anything, []byte("t"), mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return([]byte("out"), nil)
	audit.On("Create", mock.MatchedBy(func(actx context.Context) bool {
		deadline, ok := actx.Deadline()
		return ok && time.Until(deadline) <= 50*time.Millisecond && actx.Err() == nil
	}), mock.MatchedBy(func(ev *model.GenerationEvent) bool {
		return ev.RequestID == "req-9"
	})).Return(nil)

	_, err := svc.Generate(ctx, model.FormBusqueda, busquedaSubmission())
	require.NoError(t, err)
	audit.AssertExpectations(t)
}

func TestFormService_UsesLocationForDate(t *testing.T) {
	store := new(storeMocks.MockTemplateStore)
	renderer := new(pdfMocks.MockRenderer)
	loc := time.FixedZone("ECT", -5*60*60)

	svc := NewFormService(store, renderer, Options{
		Place:    "Quito",
		Location: loc,
		// 03:00 UTC on the 15th is still the 14th at UTC-5.
		Now: func() time.Time { return time.Date(2026, time.October, 15, 3, 0, 0, 0, time.UTC) },
	})

	store.On("Read", mock.Anything, "1.pdf").Return([]byte("t"), nil)
	renderer.On("Render", mock.Anything, []byte("t"), mock.MatchedBy(func(ps []model.FieldPlacement) bool {
		return hasText(ps, 340, 200, "14 de octubre de 2026") && hasText(ps, 390, 222, "Quito")
	})).Return([]byte("out"), nil)

	_, err := svc.Generate(context.Background(), model.FormBusqueda, busquedaSubmission())
	require.NoError(t, err)
	renderer.AssertExpectations(t)
}

func TestFormService_NormalizesInput(t *testing.T) {
	store := new(storeMocks.MockTemplateStore)
	renderer := new(pdfMocks.MockRenderer)
	svc := NewFormService(store, renderer, Options{Now: func() time.Time { return fixedNow }})

	sub := busquedaSubmission()
	sub["nombresCompletos"] = "Mari\u0301a"

	store.On("Read", mock.Anything, "1.pdf").Return([]byte("t"), nil)
	renderer.On("Render", mock.Anything, []byte("t"), mock.MatchedBy(func(ps []model.FieldPlacement) bool {
		return hasText(ps, 95, 520, "Mar\u00eda")
	})).Return([]byte("out"), nil)

	_, err := svc.Generate(context.Background(), model.FormBusqueda, sub)
	require.NoError(t, err)
	renderer.AssertExpectations(t)
}

func TestFormService_Ready(t *testing.T) {
	ctx := context.Background()

	t.Run("all reachable", func(t *testing.T) {
		f := newFixture(t)
		f.store.On("Ping", mock.Anything).Return(nil)
		f.audit.On("Ping", mock.Anything).Return(nil)
		assert.NoError(t, f.svc.Ready(ctx))
		f.assertExpectations(t)
	})

	t.Run("template store down", func(t *testing.T) {
		f := newFixture(t)
		f.store.On("Ping", mock.Anything).Return(errors.New("no dir"))
		assert.ErrorContains(t, f.svc.Ready(ctx), "template store")
	})

	t.Run("audit down", func(t *testing.T) {
		f := newFixture(t)
		f.store.On("Ping", mock.Anything).Return(nil)
		f.audit.On("Ping", mock.Anything).Return(errors.New("refused"))
		assert.ErrorContains(t, f.svc.Ready(ctx), "audit database")
	})

	t.Run("audit disabled", func(t *testing.T) {
		store := new(storeMocks.MockTemplateStore)
		store.On("Ping", mock.Anything).Return(nil)
		svc := NewFormService(store, new(pdfMocks.MockRenderer), Options{})
		assert.NoError(t, svc.Ready(ctx))
	})
}

func TestRequestIDContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	assert.Equal(t, "abc", RequestIDFrom(WithRequestID(context.Background(), "abc")))
}
