// Package publisher seeds the parameter store from the tracked records file.
package publisher

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trufnetwork/confsync/internal/params"
	"github.com/trufnetwork/confsync/internal/store"
	"github.com/trufnetwork/confsync/internal/yamlfile"
)

const DefaultConcurrency = 5

type Options struct {
	Store         store.ParameterStore
	VariablesPath string
	// Concurrency caps in-flight put calls; zero or less means DefaultConcurrency.
	Concurrency int
}

type Outcome struct {
	Record  params.Record
	Version int64
	Err     error
}

type Result struct {
	Published []Outcome
	Failed    []Outcome
}

// Publish puts every record of the variables file. Calls run concurrently and
// complete in any order; Publish returns once all of them are done, with the
// per-record failures combined into the returned error.
func Publish(ctx context.Context, options Options) (Result, error) {
	var result Result

	records, err := LoadRecords(options.VariablesPath)
	if err != nil {
		return result, err
	}

	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	zap.L().Info("Publishing parameters", zap.Int("count", len(records)), zap.Int("concurrency", concurrency))

	outcomes := make([]Outcome, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, record := range records {
		g.Go(func() error {
			out, err := options.Store.PutParameter(gctx, record)
			outcomes[i] = Outcome{Record: record, Version: out.Version, Err: err}

			if err != nil {
				zap.L().Error("Failed to put parameter",
					append(store.ErrorFields(err), zap.String("name", record.Name))...)
				return nil
			}
			zap.L().Info("Parameter stored",
				zap.String("name", record.Name),
				zap.Int64("version", out.Version),
				zap.String("tier", out.Tier))
			return nil
		})
	}
	// goroutines never return an error, failures are kept per record
	_ = g.Wait()

	var errs error
	for _, o := range outcomes {
		if o.Err != nil {
			result.Failed = append(result.Failed, o)
			errs = multierr.Append(errs, o.Err)
			continue
		}
		result.Published = append(result.Published, o)
	}

	if errs != nil {
		return result, errors.Wrapf(errs, "%d of %d parameters failed to publish", len(result.Failed), len(records))
	}

	return result, nil
}

// LoadRecords reads and validates the records file.
func LoadRecords(path string) ([]params.Record, error) {
	var records []params.Record
	if err := yamlfile.Read(path, &records); err != nil {
		return nil, errors.Wrap(err, "loading parameter records")
	}

	validate := validator.New()
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, errors.Wrapf(err, "invalid parameter record #%d (%s)", i, r.Name)
		}
	}

	return records, nil
}
