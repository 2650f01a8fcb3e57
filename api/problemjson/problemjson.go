// Package problemjson renders problem documents as gin responses with the
// problem+json media type. The body is the document's compiled form, so the
// merge rules of the problem package apply to the wire format unchanged.
package problemjson

import (
	"github.com/3lvia/ice-problems/problem"
	"github.com/gin-gonic/gin/render"
)

const (
	// UnsetType is substituted when a rendered problem carries no type URI.
	UnsetType = "about:blank"
)

// D renders p as a problem+json response. A missing problem type is set to
// UnsetType on p itself before the document is compiled.
func D(p *problem.Problem) JSON {
	if p.ProblemType() == "" {
		p.SetProblemType(UnsetType)
	}
	return JSON{render.JSON{Data: p.Compile()}}
}

// U renders a problem response with the given status code, title, and detail.
func U(code int, title, detail string) JSON {
	return D(problem.New(title, "").
		SetHTTPStatus(code).
		SetDetail(detail))
}

// P renders a problem response with the given status code, type, title, and detail.
func P(code int, problemType, title, detail string) JSON {
	return D(problem.New(title, problemType).
		SetHTTPStatus(code).
		SetDetail(detail))
}
