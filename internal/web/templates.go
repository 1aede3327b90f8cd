package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index.html", "detail.html"}

type pageSet struct {
	pages map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"year": func(date string) string {
			if len(date) >= 4 {
				return date[:4]
			}
			return date
		},
		"rating": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"runtime": func(minutes int) string {
			if minutes <= 0 {
				return ""
			}
			if minutes < 60 {
				return fmt.Sprintf("%dmin", minutes)
			}
			return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
		},
		"join": strings.Join,
	}
}

// mustParsePages parses each page together with the shared layout.
func mustParsePages() *pageSet {
	set := &pageSet{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tpl := template.Must(template.New("layout.html").Funcs(templateFuncs()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name))
		set.pages[name] = tpl
	}
	return set
}

func (p *pageSet) execute(w io.Writer, page string, data any) error {
	tpl, ok := p.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return tpl.ExecuteTemplate(w, "layout.html", data)
}
