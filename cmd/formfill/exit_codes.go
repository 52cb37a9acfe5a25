package main

import (
	"errors"
	"os"

	"formapi/internal/form"
	"formapi/internal/pdf"
	"formapi/internal/storage"
)

const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitUsage      = 2 // bad flags or input file
	ExitValidation = 3 // required fields missing
	ExitTemplate   = 4 // template missing or unreadable
)

func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		return ExitValidation
	case errors.Is(err, storage.ErrTemplateNotFound), errors.Is(err, pdf.ErrTemplateParse):
		return ExitTemplate
	case errors.Is(err, ErrUsage), errors.Is(err, os.ErrNotExist):
		return ExitUsage
	default:
		return ExitGeneral
	}
}
