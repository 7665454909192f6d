package report

import (
	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/renderer"
	"github.com/trufnetwork/confsync/internal/retriever"
)

type RetrievalSummary struct {
	Requested []string
	Retrieved int
	Invalid   []string
}

type FileSummary struct {
	Template   string
	Output     string
	Resolved   []string
	Unresolved []string
	Skipped    bool
}

type RenderStepSummary struct {
	Files []FileSummary
}

// Summary holds the data of summary.txt.tmpl. Retrieval and
// Render are nil when the step did not run.
type Summary struct {
	Application string
	Environment string
	Retrieval   *RetrievalSummary
	Render      *RenderStepSummary
}

// NewSummary collects the results of the steps that ran.
func NewSummary(r config.Replacements, retrieved *retriever.Result, rendered *renderer.Result) Summary {
	s := Summary{Application: r.Application, Environment: r.Environment}

	if retrieved != nil {
		s.Retrieval = &RetrievalSummary{
			Requested: retrieved.Requested,
			Retrieved: len(retrieved.Snapshot),
			Invalid:   append([]string(nil), retrieved.Invalid...),
		}
	}

	if rendered != nil {
		s.Render = &RenderStepSummary{}
		for _, f := range rendered.Files {
			s.Render.Files = append(s.Render.Files, FileSummary{
				Template:   f.Template,
				Output:     f.Output,
				Resolved:   f.Resolved,
				Unresolved: f.Unresolved,
				Skipped:    f.Skipped,
			})
		}
	}

	return s
}
