// Package scanner discovers placeholder tokens in templates and keeps the
// records file in sync with them.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/params"
	"github.com/trufnetwork/confsync/internal/yamlfile"
)

type Options struct {
	Replacements  config.Replacements
	TemplateGlob  string
	VariablesPath string
}

type Match struct {
	File  string
	Token string
	Path  string
}

type Result struct {
	Matches []Match
	// Records is the full tracking list as written to VariablesPath.
	Records []params.Record
	Added   int
}

// Scan reads every template matching TemplateGlob, upserts a tracking record
// per token into the list stored at VariablesPath and writes the list back.
// Existing records with the same path are replaced in place; records whose
// token disappeared from the templates are kept.
func Scan(ctx context.Context, options Options) (Result, error) {
	var result Result

	files, err := filepath.Glob(options.TemplateGlob)
	if err != nil {
		return result, errors.Wrapf(err, "invalid template pattern %q", options.TemplateGlob)
	}
	sort.Strings(files)

	records, err := loadTracking(options.VariablesPath)
	if err != nil {
		return result, err
	}

	builder := params.NewBuilder(options.Replacements)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return result, errors.Wrapf(err, "reading template %s", file)
		}

		for _, token := range params.TemplateTokens(string(content)) {
			record := params.NewTrackingRecord(builder, token)

			var added bool
			records, added = Upsert(records, record)
			if added {
				result.Added++
			}
			result.Matches = append(result.Matches, Match{File: file, Token: token, Path: record.Name})
		}
	}

	if err := yamlfile.Write(options.VariablesPath, records); err != nil {
		return result, errors.Wrap(err, "saving parameter records")
	}
	result.Records = records

	zap.L().Info("Templates scanned",
		zap.Int("files", len(files)),
		zap.Int("tokens", len(result.Matches)),
		zap.Int("added", result.Added),
		zap.Int("tracked", len(records)),
		zap.String("path", options.VariablesPath))

	return result, nil
}

// Upsert replaces the record with the same Name, or appends it. It reports
// whether the record was appended.
func Upsert(records []params.Record, record params.Record) ([]params.Record, bool) {
	_, idx, found := lo.FindIndexOf(records, func(r params.Record) bool {
		return r.Name == record.Name
	})
	if found {
		records[idx] = record
		return records, false
	}
	return append(records, record), true
}

func loadTracking(path string) ([]params.Record, error) {
	records := []params.Record{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return records, nil
	}

	if err := yamlfile.Read(path, &records); err != nil {
		return nil, errors.Wrap(err, "loading parameter records")
	}
	return records, nil
}
