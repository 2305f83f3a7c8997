package unpack

import (
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Validate validates an unpack request
func (r *Request) Validate() error {
	if err := r.Target.Validate(); err != nil {
		return err
	}

	if r.Jobs < 1 {
		return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("jobs must be at least 1, got %d", r.Jobs), nil)
	}

	if r.UnpackAll && r.OutputDir == "" {
		return app.NewError(app.ErrCodeInvalidInput, "output directory is required with --unpack-all", nil)
	}

	for kind := range r.Outputs {
		if !kind.IsValid() {
			return app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("unknown region %s", kind), nil)
		}
	}

	var explicit []job
	for _, kind := range types.RegionOrder {
		if path, ok := r.Outputs[kind]; ok && path != "" {
			explicit = append(explicit, job{kind: kind, path: path})
		}
	}
	return r.checkDestinations(explicit)
}

// checkDestinations rejects jobs that would write two regions, or a region
// and the manifest, to the same file
func (r *Request) checkDestinations(jobs []job) error {
	seen := make(map[string]types.RegionKind, len(jobs))
	for _, j := range jobs {
		clean := filepath.Clean(j.path)
		if other, dup := seen[clean]; dup {
			return app.NewError(app.ErrCodeInvalidInput,
				fmt.Sprintf("'%s' and '%s' sections cannot both be written to '%s'", other, j.kind, j.path), nil)
		}
		seen[clean] = j.kind
	}

	if r.ManifestPath != "" {
		if kind, dup := seen[filepath.Clean(r.ManifestPath)]; dup {
			return app.NewError(app.ErrCodeInvalidInput,
				fmt.Sprintf("manifest path '%s' collides with the '%s' section destination", r.ManifestPath, kind), nil)
		}
	}
	return nil
}
