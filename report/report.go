// Package report publishes problem occurrences to NATS so they can be
// aggregated outside the request path.
package report

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/3lvia/ice-problems/internal/tracemsg"
	"github.com/3lvia/ice-problems/problem"
	"github.com/nats-io/nats.go"
)

// SubjectPrefix is the subject prefix for occurrence messages. The last
// token is the problem's HTTP status, or "unknown" when it is unset.
const SubjectPrefix = "problems.occurrence."

// Publisher publishes occurrence messages. *nats.Conn satisfies it.
type Publisher interface {
	PublishMsg(msg *nats.Msg) error
}

type Reporter struct {
	pub Publisher
}

// New creates a Reporter publishing through pub. A nil publisher disables
// reporting, which keeps call sites free of conditionals.
func New(pub Publisher) *Reporter {
	return &Reporter{pub: pub}
}

// Subject returns the occurrence subject for p.
func Subject(p *problem.Problem) string {
	status, ok := p.HTTPStatus()
	if !ok {
		return SubjectPrefix + "unknown"
	}
	return SubjectPrefix + strconv.Itoa(status)
}

// Report publishes the compact encoding of p with the trace context of ctx
// on the message headers. Reporting is best-effort: failures are logged and
// never surfaced to the caller.
func (r *Reporter) Report(ctx context.Context, p *problem.Problem) {
	if r == nil || r.pub == nil {
		return
	}

	text, err := p.JSON(false)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode problem occurrence", "error", err)
		return
	}

	err = r.pub.PublishMsg(&nats.Msg{
		Subject: Subject(p),
		Data:    []byte(text),
		Header:  tracemsg.NewHeader(ctx),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish problem occurrence", "error", err)
	}
}
