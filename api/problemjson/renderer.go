package problemjson

import (
	"net/http"

	"github.com/gin-gonic/gin/render"
)

const (
	// ContentType is the media type for problem documents. Setting it is the
	// renderer's job, not the problem package's.
	ContentType = "application/problem+json; charset=utf-8"
)

type JSON struct {
	render.JSON
}

func (r JSON) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{ContentType}
	}
}

func (r JSON) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.JSON.Render(w)
}
