// Package layout computes where every region of a boot image lives.
package layout

import (
	"fmt"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// EffectivePageSize selects the page size used for layout. An override, when
// supplied, takes precedence over the header value and must be non-zero.
// Power-of-two values are not required since vendor values vary.
func EffectivePageSize(hdr *types.BootImgHdrT, override *uint32) (uint32, error) {
	if override != nil {
		if *override == 0 {
			return 0, &types.InvalidPageSizeError{Value: *override}
		}
		return *override, nil
	}

	if hdr.PageSize == 0 {
		return 0, fmt.Errorf("%w: header declares a page size of 0 and no override was supplied", types.ErrUnknownPageSize)
	}
	return hdr.PageSize, nil
}

// Compute lays out the regions of a boot image in canonical order. The header
// is always at offset 0; each following region with a non-zero declared size
// starts where the previous padded region ends. Regions with a declared size of
// zero are left out of the layout.
func Compute(hdr *types.BootImgHdrT, override *uint32) (*types.Layout, error) {
	if hdr == nil {
		return nil, fmt.Errorf("header cannot be nil")
	}

	pageSize, err := EffectivePageSize(hdr, override)
	if err != nil {
		return nil, err
	}

	page := uint64(pageSize)
	layout := &types.Layout{
		PageSize: pageSize,
		Regions:  make([]types.Region, 0, len(types.RegionOrder)),
	}

	var cursor uint64
	for _, kind := range types.RegionOrder {
		size := uint64(hdr.DeclaredSize(kind))
		if size == 0 {
			continue
		}

		padded := roundUp(size, page)
		layout.Regions = append(layout.Regions, types.Region{
			Kind:       kind,
			Offset:     cursor,
			Size:       size,
			PaddedSize: padded,
		})
		cursor += padded
	}

	return layout, nil
}

func roundUp(size, page uint64) uint64 {
	return ((size + page - 1) / page) * page
}
