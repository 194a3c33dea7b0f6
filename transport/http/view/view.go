package view

//go:generate go run go.uber.org/mock/mockgen -source=./view.go -destination=./mocks/view_mock.go -package=mocks

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"eventbook/shared/logger"
)

const (
	AdminDashboard = "admin-dashboard"
	EditBooking    = "edit-booking"
)

//go:embed templates/*.html
var templateFS embed.FS

type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

type rendererImpl struct {
	templates *template.Template
}

// New parses the embedded admin pages. A broken template is a build defect, so it panics.
func New() Renderer {
	templates := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

	return &rendererImpl{templates: templates}
}

func (r *rendererImpl) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer

	if err := r.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
