package header

import (
	"github.com/google/uuid"

	"github.com/deploymenttheory/go-bootimg/internal/interfaces"
	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// BootHeaderReader implements the BootHeaderReader interface.
// It holds the parsed header structure.
type BootHeaderReader struct {
	hdr *types.BootImgHdrT
}

// Compile-time check to ensure BootHeaderReader implements BootHeaderReader
var _ interfaces.BootHeaderReader = (*BootHeaderReader)(nil)

// NewBootHeaderReader creates a new reader instance from a parsed header.
func NewBootHeaderReader(hdr *types.BootImgHdrT) interfaces.BootHeaderReader {
	return &BootHeaderReader{hdr: hdr}
}

// Header returns the underlying raw header.
func (r *BootHeaderReader) Header() *types.BootImgHdrT {
	return r.hdr
}

// HasValidMagic reports whether the header carries the ANDROID! signature.
func (r *BootHeaderReader) HasValidMagic() bool {
	return r.hdr.HasValidMagic()
}

// KernelSize returns the declared kernel size in bytes.
func (r *BootHeaderReader) KernelSize() uint32 {
	return r.hdr.KernelSize
}

// RamdiskSize returns the declared ramdisk size in bytes.
func (r *BootHeaderReader) RamdiskSize() uint32 {
	return r.hdr.RamdiskSize
}

// SecondSize returns the declared second stage size in bytes.
func (r *BootHeaderReader) SecondSize() uint32 {
	return r.hdr.SecondSize
}

// DeviceTreeSize returns the declared device tree size in bytes.
func (r *BootHeaderReader) DeviceTreeSize() uint32 {
	return r.hdr.DeviceTreeSize
}

// PageSize returns the page size declared in the header.
func (r *BootHeaderReader) PageSize() uint32 {
	return r.hdr.PageSize
}

// KernelAddress returns the kernel load address.
func (r *BootHeaderReader) KernelAddress() uint32 {
	return r.hdr.KernelAddr
}

// RamdiskAddress returns the ramdisk load address.
func (r *BootHeaderReader) RamdiskAddress() uint32 {
	return r.hdr.RamdiskAddr
}

// SecondAddress returns the second stage load address.
func (r *BootHeaderReader) SecondAddress() uint32 {
	return r.hdr.SecondAddr
}

// TagsAddress returns the kernel tags physical address.
func (r *BootHeaderReader) TagsAddress() uint32 {
	return r.hdr.TagsAddr
}

// ProductName returns the product name up to the first NUL byte.
func (r *BootHeaderReader) ProductName() string {
	return cString(r.hdr.ProductName[:])
}

// Cmdline returns the kernel command line up to the first NUL byte.
func (r *BootHeaderReader) Cmdline() string {
	return cString(r.hdr.Cmdline[:])
}

// UniqueID returns a copy of the raw image identifier.
func (r *BootHeaderReader) UniqueID() [types.BootUniqueIDSize]byte {
	return r.hdr.UniqueID
}

// ImageID returns a name-based UUID derived from the unique identifier, so the
// same image always reports the same id.
func (r *BootHeaderReader) ImageID() uuid.UUID {
	return uuid.NewSHA1(uuid.Nil, r.hdr.UniqueID[:])
}
