package main

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"formapi/internal/form"
	"formapi/internal/model"
)

const dateLayout = "2006-01-02"

var ErrUsage = errors.New("usage")

type fillFlags struct {
	form      string
	input     string
	templates string
	out       string
	date      string
	timezone  string
	place     string
	blank     string

	formType model.FormType
	now      time.Time
}

func parseFlags(args []string) (*fillFlags, error) {
	fs := flag.NewFlagSet("formfill", flag.ContinueOnError)
	f := &fillFlags{}

	fs.StringVarP(&f.form, "form", "f", "", "form type: gravamen or busqueda")
	fs.StringVarP(&f.input, "input", "i", "", "submission file (.json, .yaml or .yml)")
	fs.StringVarP(&f.templates, "templates", "t", "pdfs", "template directory")
	fs.StringVarP(&f.out, "out", "o", "", "output PDF (default: the form attachment name)")
	fs.StringVar(&f.date, "date", "", "stamp date as YYYY-MM-DD (default: today)")
	fs.StringVar(&f.timezone, "tz", "America/Guayaquil", "time zone of the stamp date")
	fs.StringVar(&f.place, "place", form.DefaultPlace, "place name stamped next to the date")
	fs.StringVar(&f.blank, "blank", "", "write blank 1.pdf and 2.pdf into this directory and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.blank != "" {
		return f, nil
	}

	if f.input == "" {
		return nil, fmt.Errorf("%w: --input is required", ErrUsage)
	}

	f.formType = model.FormType(f.form)
	layout, ok := form.Lookup(f.formType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown --form %q", ErrUsage, f.form)
	}
	if f.out == "" {
		f.out = layout.Filename
	}

	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: --tz: %v", ErrUsage, err)
	}
	f.now = time.Now().In(loc)
	if f.date != "" {
		d, err := time.ParseInLocation(dateLayout, f.date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: --date must be YYYY-MM-DD", ErrUsage)
		}
		f.now = d
	}

	return f, nil
}
