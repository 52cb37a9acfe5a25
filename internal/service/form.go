package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"formapi/internal/form"
	"formapi/internal/model"
	"formapi/internal/pdf"
	"formapi/internal/repository"
	"formapi/internal/storage"
)

var ErrUnknownForm = errors.New("unknown form type")

const (
	contentTypePDF = "application/pdf"

	// DefaultAuditTimeout bounds the audit insert made for every request.
	DefaultAuditTimeout = 2 * time.Second
)

// FormService defines the form filling use cases.
type FormService interface {
	// Generate validates the submission, fills the template of the form type and
	// returns the document. Validation failures are *form.ValidationError; template
	// problems wrap storage.ErrTemplateNotFound or pdf.ErrTemplateParse; drawing
	// problems wrap pdf.ErrRender.
	Generate(ctx context.Context, formType model.FormType, sub model.Submission) (*model.GeneratedDocument, error)

	// Ready reports whether the template source and the audit log are reachable.
	Ready(ctx context.Context) error
}

// Options configures a FormService. Zero values fall back to defaults.
type Options struct {
	// Audit is optional; nil disables the generation audit log.
	Audit    repository.GenerationRepository
	Place    string
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
	Metrics  *Metrics
	// AuditTimeout defaults to DefaultAuditTimeout.
	AuditTimeout time.Duration
}

type formService struct {
	store    storage.TemplateStore
	renderer pdf.Renderer
	audit    repository.GenerationRepository
	place    string
	loc      *time.Location
	now      func() time.Time
	log      *zap.Logger
	metrics  *Metrics
	tracer   trace.Tracer

	auditTimeout time.Duration
}

// NewFormService constructs a new FormService.
func NewFormService(store storage.TemplateStore, renderer pdf.Renderer, opts Options) FormService {
	s := &formService{
		store:    store,
		renderer: renderer,
		audit:    opts.Audit,
		place:    opts.Place,
		loc:      opts.Location,
		now:      opts.Now,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		tracer:   otel.Tracer("formapi/service"),

		auditTimeout: opts.AuditTimeout,
	}
	if s.place == "" {
		s.place = form.DefaultPlace
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.auditTimeout <= 0 {
		s.auditTimeout = DefaultAuditTimeout
	}
	return s
}

func (s *formService) Generate(ctx context.Context, formType model.FormType, sub model.Submission) (*model.GeneratedDocument, error) {
	layout, ok := form.Lookup(formType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, formType)
	}

	ctx, span := s.tracer.Start(ctx, "form.generate",
		trace.WithAttributes(attribute.String("form.type", string(formType))))
	defer span.End()

	start := time.Now()
	doc, err := s.generate(ctx, layout, sub.Normalize())
	status := statusOf(err)

	s.metrics.observe(formType, status)
	s.record(ctx, formType, status, err, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(status))
		return nil, err
	}
	return doc, nil
}

func (s *formService) generate(ctx context.Context, layout *form.Layout, sub model.Submission) (*model.GeneratedDocument, error) {
	if err := layout.Validate(sub); err != nil {
		return nil, err
	}

	tmpl, err := s.store.Read(ctx, layout.Template)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", layout.Template, err)
	}

	placements := layout.Placements(sub, form.Stamp{
		Place: s.place,
		Date:  s.now().In(s.loc),
	})

	out, err := s.renderer.Render(ctx, tmpl, placements)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", layout.Type, err)
	}

	return &model.GeneratedDocument{
		Filename:    layout.Filename,
		ContentType: contentTypePDF,
		Content:     out,
	}, nil
}

func statusOf(err error) model.GenerationStatus {
	var verr *form.ValidationError
	switch {
	case err == nil:
		return model.StatusSuccess
	case errors.As(err, &verr):
		return model.StatusValidationFailed
	case errors.Is(err, storage.ErrTemplateNotFound), errors.Is(err, pdf.ErrTemplateParse):
		return model.StatusTemplateError
	default:
		return model.StatusRenderError
	}
}

// record appends the outcome to the audit log. A failing audit log never fails the request.
func (s *formService) record(ctx context.Context, formType model.FormType, status model.GenerationStatus, err error, d time.Duration) {
	if s.audit == nil {
		return
	}
	ev := &model.GenerationEvent{
		ID:         uuid.NewString(),
		RequestID:  RequestIDFrom(ctx),
		FormType:   formType,
		Status:     status,
		DurationMs: d.Milliseconds(),
		CreatedAt:  s.now().UTC(),
	}
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		ev.MissingFields = verr.Missing
	}
	// A slow or unreachable database must not hold the response. The insert
	// also survives the client going away once the PDF is built.
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.auditTimeout)
	defer cancel()
	if aerr := s.audit.Create(actx, ev); aerr != nil {
		s.log.Warn("audit_record_failed",
			zap.String("request_id", ev.RequestID),
			zap.String("form_type", string(formType)),
			zap.Error(aerr),
		)
	}
}

func (s *formService) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("template store: %w", err)
	}
	if s.audit != nil {
		if err := s.audit.Ping(ctx); err != nil {
			return fmt.Errorf("audit database: %w", err)
		}
	}
	return nil
}
