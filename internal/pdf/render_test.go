package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formapi/internal/model"
	"formapi/internal/pdf/pdftest"
)

func blankTemplate(t *testing.T) []byte {
	t.Helper()
	b, err := pdftest.Blank("Formulario")
	require.NoError(t, err)
	return b
}

type renderedPage struct {
	count   int
	content string
	fonts   types.Dict
}

// readPage decodes page 1 of a rendered document.
func readPage(t *testing.T, b []byte) renderedPage {
	t.Helper()
	doc, err := api.ReadAndValidate(bytes.NewReader(b), newConfiguration())
	require.NoError(t, err)

	page, _, inh, err := doc.PageDict(1, false)
	require.NoError(t, err)
	content, err := doc.PageContent(page)
	require.NoError(t, err)

	var fonts types.Dict
	if inh.Resources != nil {
		fonts, err = doc.DereferenceDict(inh.Resources["Font"])
		require.NoError(t, err)
	}
	return renderedPage{count: doc.PageCount, content: string(content), fonts: fonts}
}

func TestRender(t *testing.T) {
	placements := []model.FieldPlacement{
		{Name: "nombre", X: 95, Y: 700, Text: "José Muñoz", FontSize: 12},
		{Name: "marcarUso", X: 220, Y: 180, Text: "X"},
	}

	out, err := NewRenderer().Render(context.Background(), blankTemplate(t), placements)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	page := readPage(t, out)
	assert.Equal(t, 1, page.count)

	// Baseline sits exactly at the placement coordinates.
	assert.Contains(t, page.content, "BT /FFill0 12 Tf 1 0 0 1 220 180 Tm (X) Tj ET")
	for _, other := range []string{"220 296 Tm", "220 260 Tm", "220 221 Tm"} {
		assert.NotContains(t, page.content, other)
	}

	// WinAnsi bytes: é = 0xE9, ñ = 0xF1.
	assert.Contains(t, page.content, "1 0 0 1 95 700 Tm (Jos\xe9 Mu\xf1oz) Tj")

	// The template content is kept and isolated before the fields.
	assert.True(t, bytes.HasPrefix([]byte(page.content), []byte("q\n")))
	assert.Contains(t, page.content, "Formulario")

	require.NotNil(t, page.fonts)
	_, ok := page.fonts.Find("FFill0")
	assert.True(t, ok, "page resources carry the stamp font")
}

func TestRenderTextVerbatim(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "percent sequences", text: "Lote %p-3 de %P", want: "(Lote %p-3 de %P) Tj"},
		{name: "dollar sequences", text: "Ref $t $v", want: "(Ref $t $v) Tj"},
		{name: "parentheses and backslash", text: `A (B) \ C`, want: `(A \(B\) \\ C) Tj`},
		{name: "euro sign", text: "100 €", want: "(100 \x80) Tj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewRenderer().Render(context.Background(), blankTemplate(t),
				[]model.FieldPlacement{{Name: "lugarInmueble", X: 100, Y: 100, Text: tt.text}})
			require.NoError(t, err)
			assert.Contains(t, readPage(t, out).content, tt.want)
		})
	}
}

func TestRenderRejectsUnencodableText(t *testing.T) {
	_, err := NewRenderer().Render(context.Background(), blankTemplate(t),
		[]model.FieldPlacement{{Name: "nombre", X: 10, Y: 10, Text: "Łódź"}})
	assert.ErrorIs(t, err, ErrRender)
	assert.Contains(t, err.Error(), "nombre")
}

func TestRenderLeavesTemplateUntouched(t *testing.T) {
	tmpl := blankTemplate(t)
	orig := append([]byte(nil), tmpl...)

	_, err := NewRenderer().Render(context.Background(), tmpl, []model.FieldPlacement{{Name: "a", X: 10, Y: 10, Text: "a"}})
	require.NoError(t, err)
	assert.Equal(t, orig, tmpl)
}

func TestRenderTwice(t *testing.T) {
	r := NewRenderer()
	tmpl := blankTemplate(t)
	placements := []model.FieldPlacement{
		{Name: "a", X: 10, Y: 10, Text: "a"},
		{Name: "b", X: 20.5, Y: 30, Text: "Ñandú", FontSize: 9},
	}

	first, err := r.Render(context.Background(), tmpl, placements)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), tmpl, placements)
	require.NoError(t, err)

	assert.Equal(t, readPage(t, first).content, readPage(t, second).content)
}

func TestRenderNoPlacements(t *testing.T) {
	tmpl := blankTemplate(t)
	out, err := NewRenderer().Render(context.Background(), tmpl, nil)
	require.NoError(t, err)
	assert.Equal(t, tmpl, out)
}

func TestRenderCorruptTemplate(t *testing.T) {
	r := NewRenderer()
	for name, tmpl := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("this is not a pdf"),
	} {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render(context.Background(), tmpl, []model.FieldPlacement{{Text: "x"}})
			assert.ErrorIs(t, err, ErrTemplateParse)
			assert.Nil(t, out)
		})
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRenderer().Render(ctx, blankTemplate(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContentStream(t *testing.T) {
	got, err := ContentStream("F1", []model.FieldPlacement{
		{Name: "fechaActual", X: 340, Y: 210.5, Text: "14 de octubre de 2026"},
		{Name: "telefono", X: 440, Y: 625, Text: "099", FontSize: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "q 0 g\n"+
		"BT /F1 12 Tf 1 0 0 1 340 210.5 Tm (14 de octubre de 2026) Tj ET\n"+
		"BT /F1 10 Tf 1 0 0 1 440 625 Tm (099) Tj ET\n"+
		"Q\n", string(got))
}

func TestEncodable(t *testing.T) {
	for s, want := range map[string]bool{
		"José Muñoz Ñ ü ç €": true,
		"":                   true,
		"Łukasz":             false,
		"Đorđe":              false,
		"Иван":               false,
	} {
		assert.Equal(t, want, Encodable(s), s)
	}
}
