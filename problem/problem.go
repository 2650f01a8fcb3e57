// Package problem models a machine-readable HTTP API error payload:
// five fixed fields plus an open set of extension members, compiled into
// one flat document for transmission as a response body.
//
// A Problem is a plain mutable record owned by a single caller. It holds
// no resources and does no locking; to share one across goroutines, treat
// it as immutable after construction or synchronize externally.
package problem

// Problem is a structured error payload.
//
// The title should stay stable across occurrences of the same problem,
// the problem type URI identifies the problem category, and detail and
// the instance URI describe this specific occurrence. The HTTP status is
// advisory only and mirrors the status of the carrying response.
type Problem struct {
	title           string
	problemType     string
	httpStatus      *int
	detail          string
	problemInstance string
	extensions      map[string]any
}

// New creates a Problem with the given title and problem type URI.
// Detail and instance start empty, the HTTP status starts unset and the
// extension set starts empty. No validation is performed on either value.
func New(title, problemType string) *Problem {
	return &Problem{
		title:       title,
		problemType: problemType,
		extensions:  make(map[string]any),
	}
}

// Title returns the short human-readable summary.
func (p *Problem) Title() string {
	return p.title
}

// SetTitle sets the summary and returns the receiver for chaining.
func (p *Problem) SetTitle(title string) *Problem {
	p.title = title
	return p
}

// ProblemType returns the problem type URI.
func (p *Problem) ProblemType() string {
	return p.problemType
}

// SetProblemType sets the problem type URI and returns the receiver for chaining.
func (p *Problem) SetProblemType(problemType string) *Problem {
	p.problemType = problemType
	return p
}

// HTTPStatus returns the advisory HTTP status code. The second return is
// false when the status was never set.
func (p *Problem) HTTPStatus() (int, bool) {
	if p.httpStatus == nil {
		return 0, false
	}
	return *p.httpStatus, true
}

// SetHTTPStatus sets the advisory HTTP status code and returns the receiver
// for chaining. The value is carried as-is; no range checking is done.
func (p *Problem) SetHTTPStatus(status int) *Problem {
	p.httpStatus = &status
	return p
}

// Detail returns the occurrence-specific explanation.
func (p *Problem) Detail() string {
	return p.detail
}

// SetDetail sets the explanation and returns the receiver for chaining.
func (p *Problem) SetDetail(detail string) *Problem {
	p.detail = detail
	return p
}

// ProblemInstance returns the URI identifying this occurrence.
func (p *Problem) ProblemInstance() string {
	return p.problemInstance
}

// SetProblemInstance sets the occurrence URI and returns the receiver for chaining.
func (p *Problem) SetProblemInstance(problemInstance string) *Problem {
	p.problemInstance = problemInstance
	return p
}

// Compile merges the extension members and the fixed fields into one flat
// map. Extensions are copied in first, then the five fixed keys overwrite
// any extension carrying the same name. An unset HTTP status compiles to
// nil so it encodes as JSON null.
//
// Compile reads but never mutates the problem and may be called repeatedly.
func (p *Problem) Compile() map[string]any {
	compiled := make(map[string]any, len(p.extensions)+5)
	for k, v := range p.extensions {
		compiled[k] = v
	}

	compiled["title"] = p.title
	compiled["problemType"] = p.problemType
	if p.httpStatus != nil {
		compiled["httpStatus"] = *p.httpStatus
	} else {
		compiled["httpStatus"] = nil
	}
	compiled["detail"] = p.detail
	compiled["problemInstance"] = p.problemInstance

	return compiled
}
