// Package web contém os templates HTML servidos pelo serviço
package web

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Templates retorna os templates HTML embutidos, prontos para registro no
// router
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
