package extract

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/common"
)

// buildPDF writes a minimal single-page PDF with one text run per line,
// computing the xref offsets so the parser can resolve every object.
func buildPDF(lines ...string) []byte {
	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf\n")
	y := 720
	for _, l := range lines {
		fmt.Fprintf(&content, "1 0 0 1 72 %d Tm (%s) Tj\n", y, l)
		y -= 16
	}
	content.WriteString("ET")

	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}

func pdfDoc(data []byte) RawDocument {
	return RawDocument{Data: data, MediaType: constants.MediaTypePDF, Filename: "resume.pdf"}
}

func TestPDFExtractor_ExtractsText(t *testing.T) {
	e := NewPDFExtractor(Config{}, nil)

	text, err := e.Extract(context.Background(), pdfDoc(buildPDF("Jane Doe, Software Engineer", "Go and Postgres")))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe, Software Engineer")
	assert.Contains(t, text, "Go and Postgres")
}

func TestPDFExtractor_Deterministic(t *testing.T) {
	e := NewPDFExtractor(Config{}, nil)
	data := buildPDF("Jane Doe", "Berlin", "Software Engineer")

	first, err := e.Extract(context.Background(), pdfDoc(data))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := e.Extract(context.Background(), pdfDoc(data))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPDFExtractor_MalformedInput(t *testing.T) {
	e := NewPDFExtractor(Config{}, nil)
	valid := buildPDF("Jane Doe")

	cases := map[string][]byte{
		"empty":          {},
		"not a pdf":      []byte("hello, I am a plain text file"),
		"header only":    []byte("%PDF-1.4\n"),
		"truncated":      valid[:len(valid)/2],
		"garbage footer": append([]byte("%PDF-1.4\n garbage"), []byte("\n%%EOF\n")...),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			text, err := e.Extract(context.Background(), pdfDoc(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrExtraction)
			assert.Empty(t, text)
		})
	}
}

func TestPDFExtractor_RejectsUnsupportedMediaType(t *testing.T) {
	e := NewPDFExtractor(Config{}, nil)

	_, err := e.Extract(context.Background(), RawDocument{Data: buildPDF("x"), MediaType: "image/png"})
	assert.ErrorIs(t, err, common.ErrExtraction)
}

func TestPDFExtractor_MaxPages(t *testing.T) {
	e := NewPDFExtractor(Config{MaxPages: 0}, nil)
	_, err := e.Extract(context.Background(), pdfDoc(buildPDF("ok")))
	require.NoError(t, err)

	// a single page is within any positive limit
	e = NewPDFExtractor(Config{MaxPages: 1}, nil)
	_, err = e.Extract(context.Background(), pdfDoc(buildPDF("ok")))
	require.NoError(t, err)
}

func TestPDFExtractor_CustomSeparator(t *testing.T) {
	e := NewPDFExtractor(Config{Separator: "\n"}, nil)

	text, err := e.Extract(context.Background(), pdfDoc(buildPDF("first")))
	require.NoError(t, err)
	assert.Equal(t, "first\n", text)
}
