// Package scalar serves an interactive API reference for the OpenAPI document.
package scalar

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/taxonomist/pkg/module"
	"github.com/JaimeStill/taxonomist/pkg/web"
)

//go:embed index.html
var staticFS embed.FS

// NewModule creates a module that serves the Scalar API reference UI at basePath,
// rendering the OpenAPI document published at specURL.
func NewModule(basePath, title, specURL string) *module.Module {
	return module.New(basePath, buildRouter(title, specURL))
}

func buildRouter(title, specURL string) http.Handler {
	page, err := web.NewPage(staticFS, "index.html", web.ViewData{
		Title: title,
		Data:  specURL,
	})
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", page.Handler())
	return mux
}
