package template

import (
	"embed"
	"net/http"
	"time"

	stdtemplate "html/template"

	humanize "github.com/dustin/go-humanize"
)

type Template struct {
	templates *stdtemplate.Template
}

func NewTemplate(fs embed.FS) *Template {
	funcMap := stdtemplate.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"humannumber": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"humantime": func(t time.Time) string {
			return humanize.Time(t)
		},
	}
	return &Template{
		templates: stdtemplate.Must(stdtemplate.New("stdtmpl").Funcs(funcMap).ParseFS(fs, "static/views/*.html")),
	}
}

func (t *Template) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	w.WriteHeader(status)
	return t.templates.ExecuteTemplate(w, name, data)
}
