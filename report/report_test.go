package report

import (
	"context"
	"testing"

	"github.com/3lvia/ice-problems/problem"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

type memoryPublisher struct {
	msgs []*nats.Msg
}

func (m *memoryPublisher) PublishMsg(msg *nats.Msg) error {
	m.msgs = append(m.msgs, msg)
	return nil
}

func Test_Subject(t *testing.T) {
	var tests = []struct {
		name    string
		p       *problem.Problem
		subject string
	}{
		{
			name:    "status set",
			p:       problem.New("Service Unavailable", "").SetHTTPStatus(503),
			subject: "problems.occurrence.503",
		},
		{
			name:    "status unset",
			p:       problem.New("", ""),
			subject: "problems.occurrence.unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.subject, Subject(tt.p))
		})
	}
}

func Test_Report(t *testing.T) {
	pub := &memoryPublisher{}
	reporter := New(pub)

	p := problem.New("Service Unavailable", "https://example.com/probs/unavailable").
		SetHTTPStatus(503).
		SetDetail("downstream timed out").
		SetExtension("traceId", "abc-123")

	reporter.Report(context.Background(), p)

	require.Len(t, pub.msgs, 1)
	require.Equal(t, "problems.occurrence.503", pub.msgs[0].Subject)
	require.JSONEq(t, `{
		"title": "Service Unavailable",
		"problemType": "https://example.com/probs/unavailable",
		"httpStatus": 503,
		"detail": "downstream timed out",
		"problemInstance": "",
		"traceId": "abc-123"
	}`, string(pub.msgs[0].Data))
}

func Test_Report_Disabled(t *testing.T) {
	ctx := context.Background()
	p := problem.New("Not Found", "").SetHTTPStatus(404)

	// neither a nil reporter nor a reporter without a publisher may panic
	var nilReporter *Reporter
	nilReporter.Report(ctx, p)

	New(nil).Report(ctx, p)
}
