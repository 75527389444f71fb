// Package images decides whether container images must be fetched before a
// session starts, and fetches them. Nothing here is fatal: a pull that
// fails surfaces later as a container-start failure, which is where the
// terminating-error policy applies.
package images

import (
	"context"

	"github.com/gridkit-dev/gridkit/internal/logger"
)

// Engine is the image surface the resolver needs.
type Engine interface {
	ImageExists(ctx context.Context, ref string) (bool, error)
	ImagePull(ctx context.Context, ref string) error
}

// InspectErrorPolicy decides what Exists reports when the presence check
// itself fails (engine unreachable, malformed reference).
type InspectErrorPolicy int

const (
	// AssumePresent treats an image as present on inspection failure, so a
	// broken environment does not block on pulls that cannot succeed anyway.
	AssumePresent InspectErrorPolicy = iota
	// AssumeAbsent treats an image as absent on inspection failure.
	AssumeAbsent
)

// Resolver ensures image references are present locally.
type Resolver struct {
	eng            Engine
	onInspectError InspectErrorPolicy
}

// NewResolver creates a resolver with the given inspection-failure policy.
func NewResolver(eng Engine, policy InspectErrorPolicy) *Resolver {
	return &Resolver{eng: eng, onInspectError: policy}
}

// Exists reports whether the image reference is present locally, applying
// the inspection-failure policy when the check itself errors.
func (r *Resolver) Exists(ctx context.Context, ref string) bool {
	present, err := r.eng.ImageExists(ctx, ref)
	if err != nil {
		logger.Warn().Err(err).Str("image", ref).Msg("image inspection failed")
		return r.onInspectError == AssumePresent
	}
	return present
}

// EnsurePresent pulls the image if it is absent. Pull failures are logged,
// never fatal.
func (r *Resolver) EnsurePresent(ctx context.Context, ref string) {
	if r.Exists(ctx, ref) {
		logger.Debug().Str("image", ref).Msg("image already present")
		return
	}
	logger.Info().Str("image", ref).Msg("pulling image")
	if err := r.eng.ImagePull(ctx, ref); err != nil {
		logger.Warn().Err(err).Str("image", ref).Msg("image pull failed")
	}
}

// EnsureAll resolves each reference in order, fully sequentially.
func (r *Resolver) EnsureAll(ctx context.Context, refs []string) {
	for _, ref := range refs {
		r.EnsurePresent(ctx, ref)
	}
}
