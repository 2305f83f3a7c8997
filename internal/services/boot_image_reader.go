package services

import (
	"fmt"
	"io"

	"github.com/deploymenttheory/go-bootimg/internal/device"
	"github.com/deploymenttheory/go-bootimg/internal/interfaces"
	"github.com/deploymenttheory/go-bootimg/internal/parsers/header"
	"github.com/deploymenttheory/go-bootimg/internal/parsers/layout"
	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// ReadOptions controls how a boot image header is interpreted
type ReadOptions struct {
	// PageSize overrides the page size declared in the header when set
	PageSize *uint32
	// SkipMagicCheck accepts headers without the ANDROID! signature
	SkipMagicCheck bool
}

// BootImage is an opened boot image with its parsed header and computed layout
type BootImage struct {
	Device *device.ImageFile
	Header interfaces.BootHeaderReader
	Layout *types.Layout
}

// ReadBootImage reads the header from the start of src and computes the
// layout. src is left positioned after the header.
func ReadBootImage(src io.ReadSeeker, opts ReadOptions) (interfaces.BootHeaderReader, *types.Layout, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("failed to seek to header: %w", err)
	}

	hdr, err := header.ReadBootHeader(src, !opts.SkipMagicCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse boot image header: %w", err)
	}

	l, err := layout.Compute(hdr, opts.PageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute boot image layout: %w", err)
	}

	return header.NewBootHeaderReader(hdr), l, nil
}

// OpenBootImage opens the image at path, parses its header and computes its
// layout. The header is re-read on every call.
func OpenBootImage(path string, opts ReadOptions) (*BootImage, error) {
	dev, err := device.OpenImage(path)
	if err != nil {
		return nil, err
	}

	hdr, l, err := ReadBootImage(dev, opts)
	if err != nil {
		dev.Close()
		return nil, err
	}

	return &BootImage{
		Device: dev,
		Header: hdr,
		Layout: l,
	}, nil
}

// Extract copies the region of the given kind from the image to sink
func (b *BootImage) Extract(kind types.RegionKind, sink io.Writer) (int64, error) {
	return Extract(b.Device, b.Layout, kind, sink)
}

// Regions lists the present regions of the image
func (b *BootImage) Regions() []types.RegionEntry {
	return List(b.Layout)
}

// Close releases the underlying file handle
func (b *BootImage) Close() error {
	if b.Device != nil {
		return b.Device.Close()
	}
	return nil
}
