package report

import (
	"embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

//go:embed templates/summary.txt.tmpl
var tplFS embed.FS

var summaryTpl = template.Must(
	template.New("summary.txt.tmpl").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(tplFS, "templates/summary.txt.tmpl"),
)

// RenderSummary renders the run summary printed after retrieve, parse and run.
func RenderSummary(s Summary) (string, error) {
	var out strings.Builder
	if err := summaryTpl.Execute(&out, s); err != nil {
		return "", errors.Wrap(err, "rendering run summary")
	}
	return out.String(), nil
}
