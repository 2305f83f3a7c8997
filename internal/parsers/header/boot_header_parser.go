package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-bootimg/internal/types"
)

// ParseBootHeader decodes a boot image header from the first
// types.BootHeaderSize bytes of data and validates its magic signature.
func ParseBootHeader(data []byte) (*types.BootImgHdrT, error) {
	hdr, err := ParseBootHeaderUnchecked(data)
	if err != nil {
		return nil, err
	}

	if !hdr.HasValidMagic() {
		return nil, &types.MagicMismatchError{
			Expected: types.BootMagicBytes[:],
			Actual:   append([]byte(nil), hdr.Magic[:]...),
		}
	}

	return hdr, nil
}

// ParseBootHeaderUnchecked decodes a boot image header without validating the
// magic signature. Input shorter than the fixed header size still fails.
func ParseBootHeaderUnchecked(data []byte) (*types.BootImgHdrT, error) {
	if len(data) < types.BootHeaderSize {
		return nil, &types.TruncatedError{Need: types.BootHeaderSize, Have: int64(len(data))}
	}

	return parseBootHeader(data, binary.LittleEndian), nil
}

// parseBootHeader reads every field from its fixed offset. data must hold at
// least types.BootHeaderSize bytes.
func parseBootHeader(data []byte, endian binary.ByteOrder) *types.BootImgHdrT {
	hdr := &types.BootImgHdrT{}

	copy(hdr.Magic[:], data[types.OffsetMagic:types.OffsetMagic+types.BootMagicSize])

	hdr.KernelSize = endian.Uint32(data[types.OffsetKernelSize : types.OffsetKernelSize+4])
	hdr.KernelAddr = endian.Uint32(data[types.OffsetKernelAddr : types.OffsetKernelAddr+4])
	hdr.RamdiskSize = endian.Uint32(data[types.OffsetRamdiskSize : types.OffsetRamdiskSize+4])
	hdr.RamdiskAddr = endian.Uint32(data[types.OffsetRamdiskAddr : types.OffsetRamdiskAddr+4])
	hdr.SecondSize = endian.Uint32(data[types.OffsetSecondSize : types.OffsetSecondSize+4])
	hdr.SecondAddr = endian.Uint32(data[types.OffsetSecondAddr : types.OffsetSecondAddr+4])
	hdr.DeviceTreeSize = endian.Uint32(data[types.OffsetDeviceTreeSize : types.OffsetDeviceTreeSize+4])
	hdr.Reserved = endian.Uint32(data[types.OffsetReserved : types.OffsetReserved+4])
	hdr.TagsAddr = endian.Uint32(data[types.OffsetTagsAddr : types.OffsetTagsAddr+4])
	hdr.PageSize = endian.Uint32(data[types.OffsetPageSize : types.OffsetPageSize+4])

	copy(hdr.ProductName[:], data[types.OffsetProductName:types.OffsetProductName+types.BootProductNameSize])
	copy(hdr.Cmdline[:], data[types.OffsetCmdline:types.OffsetCmdline+types.BootCmdlineSize])
	copy(hdr.UniqueID[:], data[types.OffsetUniqueID:types.OffsetUniqueID+types.BootUniqueIDSize])

	return hdr
}

// ReadBootHeader reads exactly types.BootHeaderSize bytes from r and parses
// them. The magic signature is only validated when checkMagic is set.
func ReadBootHeader(r io.Reader, checkMagic bool) (*types.BootImgHdrT, error) {
	buf := make([]byte, types.BootHeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &types.TruncatedError{Need: types.BootHeaderSize, Have: int64(n)}
		}
		return nil, fmt.Errorf("failed to read boot image header: %w", err)
	}

	if checkMagic {
		return ParseBootHeader(buf)
	}
	return ParseBootHeaderUnchecked(buf)
}

// cString returns the bytes of b up to the first NUL as a string.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
