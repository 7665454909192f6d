// Package pipeline composes the default confsync run: retrieve the snapshot,
// then render the templates from it.
package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/renderer"
	"github.com/trufnetwork/confsync/internal/retriever"
	"github.com/trufnetwork/confsync/internal/store"
)

type Options struct {
	Store        store.ParameterStore
	Settings     config.Settings
	Replacements config.Replacements
}

type Result struct {
	Retrieval *retriever.Result
	Render    *renderer.Result
}

// Run retrieves and then renders. Rendering only starts once the snapshot is
// written; a failed retrieval stops the run and leaves existing output alone.
func Run(ctx context.Context, options Options) (Result, error) {
	var result Result

	retrieved, err := retriever.Retrieve(ctx, RetrieverOptions(options))
	if err != nil {
		return result, errors.Wrap(err, "retrieve step")
	}
	result.Retrieval = &retrieved

	rendered, err := renderer.Render(ctx, RendererOptions(options.Settings))
	if err != nil {
		return result, errors.Wrap(err, "render step")
	}
	result.Render = &rendered

	zap.L().Info("Pipeline finished",
		zap.Int("parameters", len(retrieved.Snapshot)),
		zap.Int("files", len(rendered.Files)),
		zap.Int("unresolved", len(rendered.Unresolved())))

	return result, nil
}

func RetrieverOptions(options Options) retriever.Options {
	return retriever.Options{
		Store:        options.Store,
		Replacements: options.Replacements,
		SnapshotPath: options.Settings.SnapshotPath,
	}
}

func RendererOptions(settings config.Settings) renderer.Options {
	return renderer.Options{
		SnapshotPath: settings.SnapshotPath,
		TemplateGlob: settings.TemplateGlob,
		OutputDir:    settings.OutputDir,
		Marker:       settings.Marker,
	}
}
