package types

import (
	"context"
	"fmt"

	"jobscout-engine/internal/domain"
)

// Query carries the per-request inputs every source adapter understands.
// Adapters that can't push a field upstream apply it locally (keywords,
// location) or fold it into defaults (contract type).
type Query struct {
	Keywords     string
	Location     string
	ContractType string
	Remote       bool
}

// Fetcher is the capability every source adapter implements. Fetch returns
// normalized records capped by the adapter's own max-results limit; it must
// skip malformed upstream records rather than fail on them, and any error it
// does return is a *SourceError wrapping the cause.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]domain.JobRecord, error)
}

// Kind classifies adapter failures for diagnostics. The retry layer treats
// all of them as transient on purpose.
type Kind string

const (
	KindNetwork Kind = "network"
	KindStatus  Kind = "upstream"
	KindPayload Kind = "payload"
	KindWorker  Kind = "worker"
)

// SourceError is the single error shape adapters raise. Raw transport errors
// never escape an adapter without this wrapper.
type SourceError struct {
	Kind Kind
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Errf builds a classified adapter error in one line.
func Errf(kind Kind, format string, args ...any) error {
	return &SourceError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
