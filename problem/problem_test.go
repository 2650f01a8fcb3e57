package problem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	var tests = []struct {
		name        string
		title       string
		problemType string
	}{
		{
			name:        "empty title and type",
			title:       "",
			problemType: "",
		},
		{
			name:        "title only",
			title:       "Not Found",
			problemType: "",
		},
		{
			name:        "title and type",
			title:       "Not Found",
			problemType: "https://example.com/probs/not-found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.title, tt.problemType)

			require.Equal(t, tt.title, p.Title())
			require.Equal(t, tt.problemType, p.ProblemType())
			require.Empty(t, p.Detail())
			require.Empty(t, p.ProblemInstance())

			_, ok := p.HTTPStatus()
			require.False(t, ok, "HTTP status should start unset")
		})
	}
}

func Test_Setters_ChainOnSameInstance(t *testing.T) {
	p := New("", "")

	got := p.SetTitle("Not Found").
		SetProblemType("https://example.com/probs/not-found").
		SetHTTPStatus(404).
		SetDetail("No such widget").
		SetProblemInstance("https://example.com/widgets/42")

	require.Same(t, p, got)

	require.Equal(t, "Not Found", p.Title())
	require.Equal(t, "https://example.com/probs/not-found", p.ProblemType())
	require.Equal(t, "No such widget", p.Detail())
	require.Equal(t, "https://example.com/widgets/42", p.ProblemInstance())

	status, ok := p.HTTPStatus()
	require.True(t, ok)
	require.Equal(t, 404, status)
}

func Test_SetHTTPStatus_NoRangeChecking(t *testing.T) {
	for _, status := range []int{-1, 0, 404, 4001} {
		p := New("", "").SetHTTPStatus(status)

		got, ok := p.HTTPStatus()
		require.True(t, ok)
		require.Equal(t, status, got)
	}
}

func Test_Compile_Defaults(t *testing.T) {
	compiled := New("", "").Compile()

	require.Equal(t, map[string]any{
		"title":           "",
		"problemType":     "",
		"httpStatus":      nil,
		"detail":          "",
		"problemInstance": "",
	}, compiled)
}

func Test_Compile_AlwaysContainsFixedKeys(t *testing.T) {
	p := New("Conflict", "https://example.com/probs/conflict").
		SetHTTPStatus(409).
		SetExtension("traceId", "abc-123").
		SetExtension("retryAfter", 30)

	compiled := p.Compile()

	for _, key := range []string{"title", "problemType", "httpStatus", "detail", "problemInstance"} {
		require.Contains(t, compiled, key)
	}
	require.Equal(t, "abc-123", compiled["traceId"])
	require.Equal(t, 30, compiled["retryAfter"])
	require.Len(t, compiled, 7)
}

func Test_Compile_FixedFieldsOverwriteExtensions(t *testing.T) {
	p := New("Real Title", "https://example.com/probs/real").
		SetExtension("title", "shadowed").
		SetExtension("problemType", "shadowed").
		SetExtension("httpStatus", 999).
		SetExtension("detail", "shadowed").
		SetExtension("problemInstance", "shadowed")

	compiled := p.Compile()

	require.Equal(t, "Real Title", compiled["title"])
	require.Equal(t, "https://example.com/probs/real", compiled["problemType"])
	require.Nil(t, compiled["httpStatus"])
	require.Equal(t, "", compiled["detail"])
	require.Equal(t, "", compiled["problemInstance"])
	require.Len(t, compiled, 5)
}

func Test_Compile_CopiesExtensions(t *testing.T) {
	p := New("", "").SetExtension("traceId", "abc-123")

	compiled := p.Compile()
	compiled["traceId"] = "mutated"
	delete(compiled, "title")

	// the compiled map is a snapshot, not a view of the problem
	v, err := p.Extension("traceId")
	require.NoError(t, err)
	require.Equal(t, "abc-123", v)
	require.Equal(t, "abc-123", p.Compile()["traceId"])
}
