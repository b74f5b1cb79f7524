package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"uniacad-portal/internal/pkg/constvars"
	"uniacad-portal/internal/pkg/exceptions"
	"uniacad-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"timetable",
	"marks",
	"attendance",
	"profile",
	"payment_success",
	"payment_cancel",
}

// PageData wraps a page view model for the shared layout. ErrorMessage, when
// set, renders the failure banner in place of the page content.
type PageData struct {
	Title        string
	ActiveTab    string
	ErrorMessage string
	Content      interface{}
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
	Log   *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, Log: logger}, nil
}

// Page writes the named page. Rendering goes through a buffer first so a
// template failure never leaks a half-written body to the client.
func (r *Renderer) Page(w http.ResponseWriter, statusCode int, name string, data *PageData) {
	tmpl, ok := r.pages[name]
	if !ok {
		utils.BuildErrorResponse(r.Log, w, exceptions.ErrRenderTemplate(fmt.Errorf("unknown page %q", name), name))
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.Log.Error("render.Page template execution failed",
			zap.String("template", name),
			zap.Error(err),
		)
		utils.BuildErrorResponse(r.Log, w, exceptions.ErrRenderTemplate(err, name))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(statusCode)
	buf.WriteTo(w)
}

// ErrorPage renders the page shell with the failure banner and no content.
// Pages degrade to the banner with a 200 so navigation chrome stays usable.
func (r *Renderer) ErrorPage(w http.ResponseWriter, name, title, message string) {
	r.Page(w, constvars.StatusOK, name, &PageData{
		Title:        title,
		ActiveTab:    name,
		ErrorMessage: message,
	})
}
