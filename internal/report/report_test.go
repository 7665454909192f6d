//go:generate go test -run . -update
package report_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/params"
	"github.com/trufnetwork/confsync/internal/renderer"
	"github.com/trufnetwork/confsync/internal/report"
	"github.com/trufnetwork/confsync/internal/retriever"
)

func TestSummary_Golden(t *testing.T) {
	replacements := config.Replacements{Application: "svc", Environment: "prod", Placeholders: []string{"db_pass", "api_key"}}

	tests := []struct {
		name      string
		retrieved *retriever.Result
		rendered  *renderer.Result
	}{
		{
			name: "summary_full",
			retrieved: &retriever.Result{
				Requested: []string{"/svc/prod/db_pass", "/svc/prod/api_key"},
				Snapshot:  params.Snapshot{{Name: "/svc/prod/db_pass", Value: "secret1"}},
				Invalid:   []string{"/svc/prod/api_key"},
			},
			rendered: &renderer.Result{Files: []renderer.FileResult{
				{
					Template:   "config/app.default.php",
					Output:     "config/app.php",
					Resolved:   []string{"<<DB_PASS>>"},
					Unresolved: []string{"<<UNKNOWN>>"},
				},
				{Template: "config/plain.php", Output: "config/plain.php", Skipped: true},
			}},
		},
		{
			name:     "summary_no_templates",
			rendered: &renderer.Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)

			got, err := report.RenderSummary(report.NewSummary(replacements, tt.retrieved, tt.rendered))
			require.NoError(t, err)

			g.Assert(t, tt.name, []byte(got))
		})
	}
}

func TestSummaryRetrievalOnly_Golden(t *testing.T) {
	g := goldie.New(t)

	summary := report.NewSummary(
		config.Replacements{Application: "api", Environment: "dev"},
		&retriever.Result{
			Requested: []string{"/api/dev/a", "/api/dev/b"},
			Snapshot:  params.Snapshot{{Name: "/api/dev/a"}, {Name: "/api/dev/b"}},
		},
		nil,
	)

	got, err := report.RenderSummary(summary)
	require.NoError(t, err)
	g.Assert(t, "summary_retrieval_only", []byte(got))
}

func TestSummarySortsInvalidWithoutTouchingResult(t *testing.T) {
	retrieved := &retriever.Result{
		Requested: []string{"/s/e/b", "/s/e/a"},
		Invalid:   []string{"/s/e/b", "/s/e/a"},
	}

	got, err := report.RenderSummary(report.NewSummary(config.Replacements{Application: "s", Environment: "e"}, retrieved, nil))
	require.NoError(t, err)

	assert.Contains(t, got, "- missing in store: /s/e/a\n- missing in store: /s/e/b\n")
	assert.Equal(t, []string{"/s/e/b", "/s/e/a"}, retrieved.Invalid)
}

func TestSummaryWithoutSteps(t *testing.T) {
	got, err := report.RenderSummary(report.NewSummary(config.Replacements{Application: "svc", Environment: "prod"}, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "confsync summary for svc/prod\n", got)
}
