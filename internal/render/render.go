// Package render turns a stored resume into a standalone HTML site.
// Rendering is a pure function of the record; the only error source is the writer.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/joseph-ayodele/resume-site/constants"
	"github.com/joseph-ayodele/resume-site/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates. Safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// UploadForm configures the landing page.
type UploadForm struct {
	Action     string // upload endpoint, e.g. /api/upload
	SitePrefix string // prefix the returned id is appended to, e.g. /site/
	LimitMB    int
}

type sitePage struct {
	Title  string
	Resume entity.Resume
}

func New() (*Renderer, error) {
	r := &Renderer{
		// raw HTML in model output is dropped, not passed through
		md: goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
	}
	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"markdown":      r.markdown,
		"categoryClass": categoryClass,
		"categories":    constants.AsStringSlice,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.tmpl = tmpl
	return r, nil
}

// Site writes the portfolio page for rec. A nil rec renders the "no data" page.
func (r *Renderer) Site(w io.Writer, rec *entity.Resume) error {
	if rec == nil {
		return r.tmpl.ExecuteTemplate(w, "nodata", nil)
	}
	title := strings.TrimSpace(rec.Personal.Name)
	if title == "" {
		title = "Portfolio"
	} else if rec.Personal.Role != "" {
		title += " | " + rec.Personal.Role
	}
	return r.tmpl.ExecuteTemplate(w, "site", sitePage{Title: title, Resume: *rec})
}

func (r *Renderer) Upload(w io.Writer, form UploadForm) error {
	return r.tmpl.ExecuteTemplate(w, "upload", form)
}

// markdown renders free text from the model. Plain prose comes out as a single paragraph.
func (r *Renderer) markdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

func categoryClass(category string) string {
	c, _ := constants.Canonicalize(category)
	return "cat-" + strings.ToLower(string(c))
}
