package sections

import (
	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Request represents a region listing request
type Request struct {
	Target app.ImageTarget
}

// Response represents the regions of one boot image
type Response struct {
	ImagePath string    `json:"image" yaml:"image"`
	PageSize  uint32    `json:"page_size" yaml:"page_size"`
	Regions   []Section `json:"regions" yaml:"regions"`
}

// Section is one present region in a listing
type Section struct {
	Kind   types.RegionKind `json:"kind" yaml:"kind"`
	Name   string           `json:"name" yaml:"name"`
	Offset uint64           `json:"offset" yaml:"offset"`
	Size   uint64           `json:"size" yaml:"size"`
}

// newSection converts a listing entry
func newSection(e types.RegionEntry) Section {
	return Section{
		Kind:   e.Kind,
		Name:   e.Kind.DisplayName(),
		Offset: e.Offset,
		Size:   e.Size,
	}
}
