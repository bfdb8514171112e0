// Package views embeds the page templates rendered by the storefront.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html auth/*.html admin/*.html *.html
var files embed.FS

// Engine returns an html engine backed by the embedded templates. Layouts
// are referenced as "layouts/main", pages as "home" or "auth/login".
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
