// Package store is the boundary to the remote parameter store.
package store

import (
	"context"

	"github.com/trufnetwork/confsync/internal/params"
)

// ParameterStore is the subset of a hierarchical key-value parameter service
// confsync depends on.
type ParameterStore interface {
	// GetParameters fetches the named parameters in a single request.
	GetParameters(ctx context.Context, names []string, withDecryption bool) (GetParametersOutput, error)
	// PutParameter creates or updates one parameter.
	PutParameter(ctx context.Context, record params.Record) (PutParameterOutput, error)
}

type GetParametersOutput struct {
	Parameters []params.Value
	// InvalidNames lists requested names the store does not know.
	InvalidNames []string
}

type PutParameterOutput struct {
	Version int64
	Tier    string
}
