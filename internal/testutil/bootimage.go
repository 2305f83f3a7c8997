// Package testutil builds synthetic boot images for tests.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// ImageSpec describes a synthetic boot image.
type ImageSpec struct {
	// Header is encoded as is. Region sizes left at 0 are filled in from the
	// payloads below.
	Header types.BootImgHdrT
	// LayoutPageSize is the page size the payloads are laid out with. Defaults
	// to Header.PageSize.
	LayoutPageSize uint32

	Kernel     []byte
	Ramdisk    []byte
	Second     []byte
	DeviceTree []byte

	// TruncateTo cuts the image to the given length when non-zero.
	TruncateTo int
}

// DefaultHeader returns a header with the magic set and typical Samsung
// load addresses.
func DefaultHeader(pageSize uint32) types.BootImgHdrT {
	hdr := types.BootImgHdrT{
		Magic:       types.BootMagicBytes,
		KernelAddr:  0x10008000,
		RamdiskAddr: 0x11000000,
		SecondAddr:  0x100f0000,
		Reserved:    0x02000000,
		TagsAddr:    0x10000100,
		PageSize:    pageSize,
	}
	copy(hdr.ProductName[:], "SRPOI17A000KU")
	copy(hdr.Cmdline[:], "console=ttySAC2,115200 androidboot.selinux=enforcing")
	copy(hdr.UniqueID[:], []byte{0xde, 0xad, 0xbe, 0xef})
	return hdr
}

// EncodeHeader serialises hdr into its fixed on-disk form.
func EncodeHeader(hdr types.BootImgHdrT) []byte {
	buf := make([]byte, types.BootHeaderSize)
	le := binary.LittleEndian

	copy(buf[types.OffsetMagic:], hdr.Magic[:])
	le.PutUint32(buf[types.OffsetKernelSize:], hdr.KernelSize)
	le.PutUint32(buf[types.OffsetKernelAddr:], hdr.KernelAddr)
	le.PutUint32(buf[types.OffsetRamdiskSize:], hdr.RamdiskSize)
	le.PutUint32(buf[types.OffsetRamdiskAddr:], hdr.RamdiskAddr)
	le.PutUint32(buf[types.OffsetSecondSize:], hdr.SecondSize)
	le.PutUint32(buf[types.OffsetSecondAddr:], hdr.SecondAddr)
	le.PutUint32(buf[types.OffsetDeviceTreeSize:], hdr.DeviceTreeSize)
	le.PutUint32(buf[types.OffsetReserved:], hdr.Reserved)
	le.PutUint32(buf[types.OffsetTagsAddr:], hdr.TagsAddr)
	le.PutUint32(buf[types.OffsetPageSize:], hdr.PageSize)
	copy(buf[types.OffsetProductName:], hdr.ProductName[:])
	copy(buf[types.OffsetCmdline:], hdr.Cmdline[:])
	copy(buf[types.OffsetUniqueID:], hdr.UniqueID[:])

	return buf
}

// Pattern returns n bytes of deterministic, seed dependent content.
func Pattern(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i*7)
	}
	return b
}

// BuildImage lays out the header and payloads with page padding.
func BuildImage(spec ImageSpec) []byte {
	hdr := spec.Header
	if hdr.KernelSize == 0 {
		hdr.KernelSize = uint32(len(spec.Kernel))
	}
	if hdr.RamdiskSize == 0 {
		hdr.RamdiskSize = uint32(len(spec.Ramdisk))
	}
	if hdr.SecondSize == 0 {
		hdr.SecondSize = uint32(len(spec.Second))
	}
	if hdr.DeviceTreeSize == 0 {
		hdr.DeviceTreeSize = uint32(len(spec.DeviceTree))
	}

	page := spec.LayoutPageSize
	if page == 0 {
		page = hdr.PageSize
	}
	if page == 0 {
		page = 2048
	}

	img := appendPadded(nil, EncodeHeader(hdr), page)
	for _, payload := range [][]byte{spec.Kernel, spec.Ramdisk, spec.Second, spec.DeviceTree} {
		if len(payload) > 0 {
			img = appendPadded(img, payload, page)
		}
	}

	if spec.TruncateTo > 0 && spec.TruncateTo < len(img) {
		img = img[:spec.TruncateTo]
	}
	return img
}

func appendPadded(dst, data []byte, page uint32) []byte {
	dst = append(dst, data...)
	if rem := uint32(len(data)) % page; rem != 0 {
		dst = append(dst, make([]byte, page-rem)...)
	}
	return dst
}

// WriteImage builds the image and writes it to a file in a temporary
// directory, returning its path.
func WriteImage(t testing.TB, spec ImageSpec) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "boot.img")
	if err := os.WriteFile(path, BuildImage(spec), 0o644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

// SampleSpec returns a small image with kernel, ramdisk and device tree and
// no second stage.
func SampleSpec(pageSize uint32) ImageSpec {
	return ImageSpec{
		Header:     DefaultHeader(pageSize),
		Kernel:     Pattern(5000, 1),
		Ramdisk:    Pattern(3000, 2),
		DeviceTree: Pattern(256, 3),
	}
}
