package types

// Region is a present region of a boot image with its computed position.
type Region struct {
	// Kind of the region.
	Kind RegionKind
	// Offset from the start of the image, in bytes. Always a multiple of the page size.
	Offset uint64
	// Size is the declared size of the region's data, in bytes.
	Size uint64
	// PaddedSize is Size rounded up to the next multiple of the page size.
	PaddedSize uint64
}

// End returns the offset just past the region's padded extent.
func (r Region) End() uint64 {
	return r.Offset + r.PaddedSize
}

// DataEnd returns the offset just past the region's declared data.
func (r Region) DataEnd() uint64 {
	return r.Offset + r.Size
}

// Layout is the ordered set of present regions of one image, along with the
// page size used to compute it. Regions with a declared size of zero are not
// part of the layout.
type Layout struct {
	PageSize uint32
	Regions  []Region
}

// Region returns the region of the given kind, if present.
func (l *Layout) Region(kind RegionKind) (Region, bool) {
	for _, r := range l.Regions {
		if r.Kind == kind {
			return r, true
		}
	}
	return Region{}, false
}

// Has reports whether a region of the given kind is present.
func (l *Layout) Has(kind RegionKind) bool {
	_, ok := l.Region(kind)
	return ok
}

// Extent returns the offset just past the last region's padded extent.
func (l *Layout) Extent() uint64 {
	if len(l.Regions) == 0 {
		return 0
	}
	return l.Regions[len(l.Regions)-1].End()
}

// RegionEntry is a single line of a region listing.
type RegionEntry struct {
	Kind   RegionKind `json:"kind" yaml:"kind"`
	Offset uint64     `json:"offset" yaml:"offset"`
	Size   uint64     `json:"size" yaml:"size"`
}
