// File: internal/interfaces/boot_image.go
package interfaces

import (
	"github.com/google/uuid"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// BootHeaderReader provides decoded access to a parsed boot image header
type BootHeaderReader interface {
	// Header returns the underlying raw header
	Header() *types.BootImgHdrT

	// HasValidMagic reports whether the header carries the ANDROID! signature
	HasValidMagic() bool

	// KernelSize returns the declared kernel size in bytes
	KernelSize() uint32

	// RamdiskSize returns the declared ramdisk size in bytes
	RamdiskSize() uint32

	// SecondSize returns the declared second stage size in bytes
	SecondSize() uint32

	// DeviceTreeSize returns the declared device tree size in bytes
	DeviceTreeSize() uint32

	// PageSize returns the page size declared in the header, which may be 0
	PageSize() uint32

	// KernelAddress returns the kernel load address
	KernelAddress() uint32

	// RamdiskAddress returns the ramdisk load address
	RamdiskAddress() uint32

	// SecondAddress returns the second stage load address
	SecondAddress() uint32

	// TagsAddress returns the kernel tags physical address
	TagsAddress() uint32

	// ProductName returns the product name up to the first NUL byte
	ProductName() string

	// Cmdline returns the kernel command line up to the first NUL byte
	Cmdline() string

	// UniqueID returns a copy of the raw image identifier
	UniqueID() [types.BootUniqueIDSize]byte

	// ImageID returns a stable UUID derived from the unique identifier
	ImageID() uuid.UUID
}
