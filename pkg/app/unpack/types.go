package unpack

import (
	"path/filepath"

	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Request represents a region unpack request
type Request struct {
	Target app.ImageTarget

	// Outputs maps explicitly requested regions to destination paths
	Outputs map[types.RegionKind]string
	// UnpackAll selects every present non-header region not named in Outputs
	UnpackAll bool
	// OutputDir receives regions selected by UnpackAll
	OutputDir string

	Jobs         int
	ManifestPath string
}

// Response represents the outcome of an unpack run
type Response struct {
	ImagePath string   `json:"image" yaml:"image"`
	ImageID   string   `json:"image_id" yaml:"image_id"`
	PageSize  uint32   `json:"page_size" yaml:"page_size"`
	Results   []Result `json:"results" yaml:"results"`
	Manifest  string   `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// Result is the outcome of unpacking one region
type Result struct {
	Kind   types.RegionKind `json:"kind" yaml:"kind"`
	Path   string           `json:"path" yaml:"path"`
	Offset uint64           `json:"offset" yaml:"offset"`
	Size   int64            `json:"size" yaml:"size"`
	SHA256 string           `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Succeeded reports whether the region was written
func (r *Result) Succeeded() bool {
	return r.err == nil
}

// Succeeded returns the results that were written, in canonical order
func (r *Response) Succeeded() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Succeeded() {
			out = append(out, res)
		}
	}
	return out
}

// job is one region to unpack
type job struct {
	kind types.RegionKind
	path string
}

// selection resolves the regions to unpack in canonical order. Explicit
// destinations always win; UnpackAll fills in the remaining present
// non-header regions under OutputDir.
func (r *Request) selection(layout *types.Layout) []job {
	var jobs []job
	for _, kind := range types.RegionOrder {
		if path, ok := r.Outputs[kind]; ok && path != "" {
			jobs = append(jobs, job{kind: kind, path: path})
			continue
		}
		if r.UnpackAll && kind != types.RegionHeader && layout.Has(kind) {
			jobs = append(jobs, job{kind: kind, path: filepath.Join(r.OutputDir, kind.DefaultFileName())})
		}
	}
	return jobs
}
