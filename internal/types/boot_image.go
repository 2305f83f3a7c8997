// Package types implements the on-disk data structures of Samsung flavoured
// Android boot images along with the computed region layout.
package types

// Boot Image Header
// The header occupies the first bytes of the image. Every field is stored at a
// fixed offset and multi-byte integers are little endian.

const (
	// BootMagicSize is the width of the magic signature field.
	BootMagicSize = 8
	// BootProductNameSize is the width of the NUL terminated product name.
	BootProductNameSize = 24
	// BootCmdlineSize is the width of the NUL terminated kernel command line.
	BootCmdlineSize = 512
	// BootUniqueIDSize is the width of the image identifier (timestamp, checksum or digest).
	BootUniqueIDSize = 32

	// BootHeaderSize is the fixed size, in bytes, of the header as stored in the image.
	BootHeaderSize = 616
)

// BootMagic is the signature found at the start of every boot image.
const BootMagic = "ANDROID!"

// BootMagicBytes is BootMagic in byte array form.
var BootMagicBytes = [BootMagicSize]byte{'A', 'N', 'D', 'R', 'O', 'I', 'D', '!'}

// Field offsets within the header.
const (
	OffsetMagic          = 0
	OffsetKernelSize     = 8
	OffsetKernelAddr     = 12
	OffsetRamdiskSize    = 16
	OffsetRamdiskAddr    = 20
	OffsetSecondSize     = 24
	OffsetSecondAddr     = 28
	OffsetDeviceTreeSize = 32
	OffsetReserved       = 36
	OffsetTagsAddr       = 40
	OffsetPageSize       = 44
	OffsetProductName    = 48
	OffsetCmdline        = OffsetProductName + BootProductNameSize // 72
	OffsetUniqueID       = OffsetCmdline + BootCmdlineSize         // 584
)

// BootImgHdrT is the raw boot image header, decoded field by field from the
// first BootHeaderSize bytes of the image.
type BootImgHdrT struct {
	// Signature used to recognise the image. Always BootMagic for valid images.
	Magic [BootMagicSize]byte

	// Size of the kernel in bytes.
	KernelSize uint32
	// Kernel physical load address.
	KernelAddr uint32

	// Size of the ramdisk in bytes.
	RamdiskSize uint32
	// Ramdisk physical load address.
	RamdiskAddr uint32

	// Size of the optional second stage in bytes.
	SecondSize uint32
	// Second stage physical load address.
	SecondAddr uint32

	// Size of the device tree blob in bytes.
	DeviceTreeSize uint32
	// Reserved. Preserved as read.
	Reserved uint32

	// Physical address of the kernel tags.
	TagsAddr uint32
	// Flash page size. Some devices ship images with 0 here.
	PageSize uint32

	// Product name, NUL terminated ASCII.
	ProductName [BootProductNameSize]byte
	// Kernel command line, NUL terminated ASCII.
	Cmdline [BootCmdlineSize]byte
	// Identifier of the image.
	UniqueID [BootUniqueIDSize]byte
}

// HasValidMagic reports whether the header carries the BootMagic signature.
func (h *BootImgHdrT) HasValidMagic() bool {
	return h.Magic == BootMagicBytes
}

// DeclaredSize returns the size recorded in the header for the given region
// kind. The header region always reports BootHeaderSize.
func (h *BootImgHdrT) DeclaredSize(kind RegionKind) uint32 {
	switch kind {
	case RegionHeader:
		return BootHeaderSize
	case RegionKernel:
		return h.KernelSize
	case RegionRamdisk:
		return h.RamdiskSize
	case RegionSecondStage:
		return h.SecondSize
	case RegionDeviceTree:
		return h.DeviceTreeSize
	default:
		return 0
	}
}

// LoadAddress returns the load address recorded for the given region kind.
// Regions without a load address report 0.
func (h *BootImgHdrT) LoadAddress(kind RegionKind) uint32 {
	switch kind {
	case RegionKernel:
		return h.KernelAddr
	case RegionRamdisk:
		return h.RamdiskAddr
	case RegionSecondStage:
		return h.SecondAddr
	default:
		return 0
	}
}
