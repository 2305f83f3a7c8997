package inspect

import (
	"encoding/hex"
	"strings"

	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Handle decodes the header of a boot image
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	img, err := app.OpenImage(ctx, &req.Target)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	hdr := img.Header
	raw := hdr.Header()
	uid := hdr.UniqueID()

	return &Response{
		ImagePath:      req.Target.ImagePath,
		Magic:          printable(raw.Magic[:]),
		ValidMagic:     hdr.HasValidMagic(),
		ProductName:    hdr.ProductName(),
		Cmdline:        hdr.Cmdline(),
		KernelSize:     hdr.KernelSize(),
		KernelAddress:  hdr.KernelAddress(),
		RamdiskSize:    hdr.RamdiskSize(),
		RamdiskAddress: hdr.RamdiskAddress(),
		SecondSize:     hdr.SecondSize(),
		SecondAddress:  hdr.SecondAddress(),
		DeviceTreeSize: hdr.DeviceTreeSize(),
		TagsAddress:    hdr.TagsAddress(),
		HeaderPageSize: hdr.PageSize(),
		PageSize:       img.Layout.PageSize,
		UniqueID:       hex.EncodeToString(uid[:]),
		ImageID:        hdr.ImageID().String(),
	}, nil
}

// printable renders b with non-printable bytes replaced by '.'
func printable(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			sb.WriteByte('.')
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
