package httpapi

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexHTML []byte

// serveIndex serves the query form page.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}
