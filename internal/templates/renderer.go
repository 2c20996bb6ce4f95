package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed html/layout.html html/employee.html html/inventory.html html/error.html
var templatesFS embed.FS

const (
	EmployeePage  = "employee"
	InventoryPage = "inventory"
	ErrorPage     = "error"
)

// Renderer реализует echo.Renderer: каждая страница рендерится внутри layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{EmployeePage, InventoryPage, ErrorPage} {
		tmpl, err := template.ParseFS(templatesFS, "html/layout.html", "html/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q is not registered", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
