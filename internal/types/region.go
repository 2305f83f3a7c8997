package types

import "fmt"

// RegionKind identifies a logically typed region of a boot image.
type RegionKind uint8

const (
	// RegionHeader is the fixed size header at the start of the image.
	RegionHeader RegionKind = iota
	// RegionKernel is the kernel image.
	RegionKernel
	// RegionRamdisk is the initial ramdisk.
	RegionRamdisk
	// RegionSecondStage is the optional second stage payload.
	RegionSecondStage
	// RegionDeviceTree is the device tree blob.
	RegionDeviceTree
)

// RegionOrder is the canonical on-disk order of regions. Offsets are computed
// by walking this slice; vendor defined trailing regions are appended here.
var RegionOrder = []RegionKind{
	RegionHeader,
	RegionKernel,
	RegionRamdisk,
	RegionSecondStage,
	RegionDeviceTree,
}

var regionNames = map[RegionKind]string{
	RegionHeader:      "header",
	RegionKernel:      "kernel",
	RegionRamdisk:     "ramdisk",
	RegionSecondStage: "second_stage",
	RegionDeviceTree:  "device_tree",
}

var regionDisplayNames = map[RegionKind]string{
	RegionHeader:      "Header",
	RegionKernel:      "Kernel",
	RegionRamdisk:     "Ramdisk",
	RegionSecondStage: "Second Stage",
	RegionDeviceTree:  "Device Tree",
}

var regionFileNames = map[RegionKind]string{
	RegionHeader:      "header.img",
	RegionKernel:      "kernel.img",
	RegionRamdisk:     "ramdisk.img",
	RegionSecondStage: "second.img",
	RegionDeviceTree:  "device_tree.img",
}

// String returns the machine readable name of the region kind.
func (k RegionKind) String() string {
	if name, ok := regionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", uint8(k))
}

// DisplayName returns the name used in human readable listings.
func (k RegionKind) DisplayName() string {
	if name, ok := regionDisplayNames[k]; ok {
		return name
	}
	return k.String()
}

// DefaultFileName returns the file name a region is unpacked to when no
// explicit destination is given.
func (k RegionKind) DefaultFileName() string {
	if name, ok := regionFileNames[k]; ok {
		return name
	}
	return k.String() + ".img"
}

// IsValid reports whether k is part of the canonical region order.
func (k RegionKind) IsValid() bool {
	_, ok := regionNames[k]
	return ok
}

// MarshalText encodes the kind by name, so json and yaml output stay readable.
func (k RegionKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("unknown region kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name or alias.
func (k *RegionKind) UnmarshalText(text []byte) error {
	kind, err := ParseRegionKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseRegionKind resolves a region kind from its name. The short aliases
// "second" and "tree" are accepted as well.
func ParseRegionKind(name string) (RegionKind, error) {
	switch name {
	case "second":
		return RegionSecondStage, nil
	case "tree", "dtb":
		return RegionDeviceTree, nil
	}
	for kind, n := range regionNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown region kind %q", name)
}
