package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// Extract copies the declared bytes of the region of the given kind from src
// to sink and returns the number of bytes copied. Padding after the region is
// never copied.
//
// The readable extent of src is determined by seeking to its end, after which
// src is positioned at the region's offset. No position is restored, so callers
// sharing a source across calls must not rely on its position. Nothing is
// written to sink when the region is absent or extends past the end of src.
func Extract(src io.ReadSeeker, layout *types.Layout, kind types.RegionKind, sink io.Writer) (int64, error) {
	if layout == nil {
		return 0, fmt.Errorf("layout cannot be nil")
	}

	region, ok := layout.Region(kind)
	if !ok {
		return 0, &types.RegionAbsentError{Kind: kind}
	}

	extent, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to determine source size: %w", err)
	}

	if region.DataEnd() > uint64(extent) {
		return 0, &types.SourceTooShortError{
			Kind:      kind,
			Offset:    region.Offset,
			Size:      region.Size,
			Available: uint64(extent),
		}
	}

	if _, err := src.Seek(int64(region.Offset), io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek to %s region at 0x%X: %w", kind, region.Offset, err)
	}

	n, err := io.CopyN(sink, src, int64(region.Size))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, &types.SourceTooShortError{
				Kind:      kind,
				Offset:    region.Offset,
				Size:      region.Size,
				Available: region.Offset + uint64(n),
			}
		}
		return n, fmt.Errorf("failed to copy %s region: %w", kind, err)
	}

	return n, nil
}
