package inspect

import (
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

// Request represents a header inspection request
type Request struct {
	Target app.ImageTarget
}

// Response represents the decoded header of one boot image
type Response struct {
	ImagePath  string `json:"image" yaml:"image"`
	Magic      string `json:"magic" yaml:"magic"`
	ValidMagic bool   `json:"valid_magic" yaml:"valid_magic"`

	ProductName string `json:"product_name" yaml:"product_name"`
	Cmdline     string `json:"cmdline" yaml:"cmdline"`

	KernelSize     uint32 `json:"kernel_size" yaml:"kernel_size"`
	KernelAddress  uint32 `json:"kernel_addr" yaml:"kernel_addr"`
	RamdiskSize    uint32 `json:"ramdisk_size" yaml:"ramdisk_size"`
	RamdiskAddress uint32 `json:"ramdisk_addr" yaml:"ramdisk_addr"`
	SecondSize     uint32 `json:"second_size" yaml:"second_size"`
	SecondAddress  uint32 `json:"second_addr" yaml:"second_addr"`
	DeviceTreeSize uint32 `json:"device_tree_size" yaml:"device_tree_size"`
	TagsAddress    uint32 `json:"tags_addr" yaml:"tags_addr"`

	// HeaderPageSize is the value stored in the header, PageSize the one used
	HeaderPageSize uint32 `json:"header_page_size" yaml:"header_page_size"`
	PageSize       uint32 `json:"page_size" yaml:"page_size"`

	UniqueID string `json:"unique_id" yaml:"unique_id"`
	ImageID  string `json:"image_id" yaml:"image_id"`
}
