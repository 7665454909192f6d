package renderer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/trufnetwork/confsync/internal/retriever"
)

type Options struct {
	SnapshotPath string
	TemplateGlob string
	OutputDir    string
	Marker       string
}

type FileResult struct {
	Template   string
	Output     string
	Resolved   []string
	Unresolved []string
	// Skipped is set when the output would overwrite the template itself.
	Skipped bool
}

type Result struct {
	Files []FileResult
}

// Unresolved returns the distinct tokens left in any rendered file.
func (r Result) Unresolved() []string {
	return lo.Uniq(lo.FlatMap(r.Files, func(f FileResult, _ int) []string {
		return f.Unresolved
	}))
}

// Render substitutes the snapshot values into every template matching
// TemplateGlob and writes the results into OutputDir.
func Render(ctx context.Context, options Options) (Result, error) {
	var result Result

	snapshot, err := retriever.LoadSnapshot(options.SnapshotPath)
	if err != nil {
		return result, err
	}
	replacer := NewReplacer(snapshot)

	files, err := filepath.Glob(options.TemplateGlob)
	if err != nil {
		return result, errors.Wrapf(err, "invalid template pattern %q", options.TemplateGlob)
	}
	sort.Strings(files)

	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return result, errors.Wrapf(err, "creating output directory %s", options.OutputDir)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fileResult, err := renderFile(file, replacer, options)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, fileResult)
	}

	zap.L().Info("Config files rendered",
		zap.Int("templates", len(files)),
		zap.Int("parameters", len(snapshot)),
		zap.String("output_dir", options.OutputDir))

	return result, nil
}

func renderFile(file string, replacer *Replacer, options Options) (FileResult, error) {
	fileResult := FileResult{
		Template: file,
		Output:   filepath.Join(options.OutputDir, OutputName(filepath.Base(file), options.Marker)),
	}

	if sameFile(file, fileResult.Output) {
		zap.L().Warn("Template name has no marker, not overwriting it",
			zap.String("template", file),
			zap.String("marker", options.Marker))
		fileResult.Skipped = true
		return fileResult, nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return fileResult, errors.Wrapf(err, "reading template %s", file)
	}

	rendered, resolved, unresolved := replacer.Replace(string(content))
	fileResult.Resolved = resolved
	fileResult.Unresolved = unresolved

	if err := os.WriteFile(fileResult.Output, []byte(rendered), 0644); err != nil {
		return fileResult, errors.Wrapf(err, "writing %s", fileResult.Output)
	}

	if len(fileResult.Unresolved) > 0 {
		zap.L().Warn("Tokens without a value left in output",
			zap.String("output", fileResult.Output),
			zap.Strings("tokens", fileResult.Unresolved))
	}
	zap.L().Debug("Rendered template",
		zap.String("template", file),
		zap.String("output", fileResult.Output),
		zap.Int("resolved", len(resolved)))

	return fileResult, nil
}

// OutputName removes the first occurrence of marker from the base name of a
// template, keeping its extension. Names without the marker are returned as is.
func OutputName(name, marker string) string {
	if marker == "" {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return strings.Replace(base, marker, "", 1) + ext
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
