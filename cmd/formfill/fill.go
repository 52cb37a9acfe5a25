package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"formapi/internal/model"
	"formapi/internal/pdf"
	"formapi/internal/pdf/pdftest"
	"formapi/internal/service"
	"formapi/internal/storage"
)

// readSubmission decodes a submission file. YAML is converted to JSON first so
// both formats share the same value rules.
func readSubmission(path string) (model.Submission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %v", ErrUsage, err)
		}
	case ".json":
	default:
		return nil, fmt.Errorf("%w: unsupported input extension %q", ErrUsage, filepath.Ext(path))
	}

	sub := model.Submission{}
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return sub, nil
}

func fill(ctx context.Context, f *fillFlags) (string, error) {
	sub, err := readSubmission(f.input)
	if err != nil {
		return "", err
	}

	svc := service.NewFormService(storage.NewLocal(f.templates), pdf.NewRenderer(), service.Options{
		Place:    f.place,
		Location: f.now.Location(),
		Now:      func() time.Time { return f.now },
	})

	doc, err := svc.Generate(ctx, f.formType, sub)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(f.out, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return f.out, nil
}

func writeBlankTemplates(dir string) error {
	if err := pdftest.WriteTemplates(dir, "1.pdf", "2.pdf"); err != nil {
		return fmt.Errorf("write blank templates: %w", err)
	}
	return nil
}
