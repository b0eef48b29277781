package pages

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/courtlab/backend/internal/content"
	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded content-page templates. Templates are parsed
// once at startup; a parse failure is a programming error surfaced there.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: templates}, nil
}

type PageData struct {
	ActivePage string
	Drills     []content.Drill
}

func (r *Renderer) Render(c *fiber.Ctx, name string, data PageData) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
