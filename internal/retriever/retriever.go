// Package retriever fetches the current values of every configured
// placeholder and persists them as the snapshot the renderer reads.
package retriever

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/trufnetwork/confsync/config"
	"github.com/trufnetwork/confsync/internal/params"
	"github.com/trufnetwork/confsync/internal/store"
	"github.com/trufnetwork/confsync/internal/yamlfile"
)

type Options struct {
	Store        store.ParameterStore
	Replacements config.Replacements
	// SnapshotPath is overwritten on success and left untouched on failure.
	SnapshotPath string
}

type Result struct {
	Requested []string
	Snapshot  params.Snapshot
	// Invalid holds requested paths the store does not know.
	Invalid []string
}

// Retrieve requests every path built from the replacements, with decryption,
// and writes the values to the snapshot file.
func Retrieve(ctx context.Context, options Options) (Result, error) {
	result := Result{
		Requested: params.BuildPaths(options.Replacements),
		Snapshot:  params.Snapshot{},
	}

	zap.L().Info("Retrieving parameters",
		zap.Int("count", len(result.Requested)),
		zap.String("application", options.Replacements.Application),
		zap.String("environment", options.Replacements.Environment))

	for _, batch := range lo.Chunk(result.Requested, store.MaxNamesPerRequest) {
		out, err := options.Store.GetParameters(ctx, batch, true)
		if err != nil {
			zap.L().Error("Failed to retrieve parameters",
				append(store.ErrorFields(err), zap.Strings("names", batch), zap.Stack("stack"))...)
			return result, errors.Wrap(err, "retrieving parameters")
		}

		result.Snapshot = append(result.Snapshot, out.Parameters...)
		result.Invalid = append(result.Invalid, out.InvalidNames...)
	}

	for _, name := range result.Invalid {
		zap.L().Warn("Parameter not found in store", zap.String("name", name))
	}

	if err := yamlfile.Write(options.SnapshotPath, result.Snapshot); err != nil {
		return result, errors.Wrap(err, "saving parameter snapshot")
	}

	zap.L().Info("Parameter snapshot saved",
		zap.String("path", options.SnapshotPath),
		zap.Int("parameters", len(result.Snapshot)),
		zap.Int("invalid", len(result.Invalid)))

	return result, nil
}

// LoadSnapshot reads a snapshot written by Retrieve.
func LoadSnapshot(path string) (params.Snapshot, error) {
	snapshot := params.Snapshot{}
	if err := yamlfile.Read(path, &snapshot); err != nil {
		return nil, errors.Wrap(err, "loading parameter snapshot")
	}
	return snapshot, nil
}
