package services

import "github.com/deploymenttheory/go-bootimg/internal/types"

// List returns the present regions of a layout in canonical order, header
// first. Sizes are the declared data sizes, not the padded extents.
func List(layout *types.Layout) []types.RegionEntry {
	if layout == nil {
		return nil
	}

	entries := make([]types.RegionEntry, 0, len(layout.Regions))
	for _, r := range layout.Regions {
		if r.Size == 0 {
			continue
		}
		entries = append(entries, types.RegionEntry{
			Kind:   r.Kind,
			Offset: r.Offset,
			Size:   r.Size,
		})
	}
	return entries
}
