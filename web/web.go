// Package web holds the embedded HTML views.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templates embed.FS

// Templates exposes the view directory for the fiber html engine.
func Templates() http.FileSystem {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
