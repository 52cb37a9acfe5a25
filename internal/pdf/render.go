// Package pdf draws text placements into the first page of a PDF template.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/font"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"formapi/internal/model"
)

var (
	// ErrTemplateParse means the template bytes are not a usable PDF document.
	ErrTemplateParse = errors.New("template parse failed")
	// ErrRender means drawing or serializing the filled document failed.
	ErrRender = errors.New("render failed")
)

const (
	fontName   = "Helvetica"
	fontPrefix = "FFill"
)

// Renderer draws placements on a template and returns the new document.
type Renderer interface {
	Render(ctx context.Context, template []byte, placements []model.FieldPlacement) ([]byte, error)
}

type pdfcpuRenderer struct{}

var disableConfigDir sync.Once

// NewRenderer returns a Renderer backed by pdfcpu. Text is drawn on page 1 only,
// with its baseline starting at (X, Y), in the order given.
func NewRenderer() Renderer {
	// pdfcpu otherwise creates a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)
	return &pdfcpuRenderer{}
}

func newConfiguration() *pdfmodel.Configuration {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	conf.Optimize = true
	return conf
}

func (r *pdfcpuRenderer) Render(ctx context.Context, template []byte, placements []model.FieldPlacement) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := api.ReadValidateAndOptimize(bytes.NewReader(template), newConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	if doc.PageCount < 1 {
		return nil, fmt.Errorf("%w: document has no pages", ErrTemplateParse)
	}

	if len(placements) == 0 {
		return append([]byte(nil), template...), nil
	}

	if err := drawFirstPage(doc.XRefTable, placements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	var out bytes.Buffer
	if err := api.WriteContext(doc, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out.Bytes(), nil
}

// drawFirstPage registers Helvetica on page 1 and appends the text operators
// after the existing content, which is wrapped in q/Q so its graphics state
// cannot shift the placements.
func drawFirstPage(xrt *pdfmodel.XRefTable, placements []model.FieldPlacement) error {
	page, _, inh, err := xrt.PageDict(1, false)
	if err != nil {
		return err
	}
	if page == nil {
		return errors.New("page 1 not found")
	}

	fontID, err := addFontResource(xrt, page, inh.Resources)
	if err != nil {
		return err
	}

	content, err := ContentStream(fontID, placements)
	if err != nil {
		return err
	}
	return appendContent(xrt, page, content)
}

// addFontResource gives the page its own resource dict (a copy of the one in
// effect) with the core font added, and returns the font resource name.
func addFontResource(xrt *pdfmodel.XRefTable, page, inherited types.Dict) (string, error) {
	res := types.NewDict()
	if inherited != nil {
		res = inherited.Clone().(types.Dict)
	}

	fonts := types.NewDict()
	if obj, ok := res.Find("Font"); ok {
		d, err := xrt.DereferenceDict(obj)
		if err != nil {
			return "", err
		}
		if d != nil {
			fonts = d.Clone().(types.Dict)
		}
	}

	ref, err := font.EnsureFontDict(xrt, fontName, "", "", false, nil)
	if err != nil {
		return "", err
	}
	id := fonts.NewIDForPrefix(fontPrefix, 0)
	fonts.Insert(id, *ref)

	res.Update("Font", fonts)
	page.Update("Resources", res)
	return id, nil
}

func appendContent(xrt *pdfmodel.XRefTable, page types.Dict, content []byte) error {
	open, err := xrt.StreamDictIndRef([]byte("q\n"))
	if err != nil {
		return err
	}
	draw, err := xrt.StreamDictIndRef(append([]byte("Q\n"), content...))
	if err != nil {
		return err
	}

	contents := types.Array{*open}
	if obj, ok := page.Find("Contents"); ok {
		o, err := xrt.Dereference(obj)
		if err != nil {
			return err
		}
		switch o := o.(type) {
		case nil:
		case types.Array:
			contents = append(contents, o...)
		case types.StreamDict:
			if _, direct := obj.(types.StreamDict); direct {
				ir, err := xrt.IndRefForNewObject(o)
				if err != nil {
					return err
				}
				obj = *ir
			}
			contents = append(contents, obj)
		default:
			return fmt.Errorf("unexpected page contents %T", o)
		}
	}
	contents = append(contents, *draw)

	page.Update("Contents", contents)
	return nil
}

// ContentStream returns the PDF operators drawing the placements in black with
// the font resource fontID. Text is WinAnsi encoded and written verbatim.
func ContentStream(fontID string, placements []model.FieldPlacement) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("q 0 g\n")
	for _, p := range placements {
		text, err := encodeWinAnsi(p.Text)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.Name, err)
		}
		esc, err := types.Escape(text)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.Name, err)
		}
		fmt.Fprintf(&b, "BT /%s %s Tf 1 0 0 1 %s %s Tm (%s) Tj ET\n",
			fontID, num(p.Size()), num(p.X), num(p.Y), *esc)
	}
	b.WriteString("Q\n")
	return b.Bytes(), nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
