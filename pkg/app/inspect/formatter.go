package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes a decoded header according to output format
func FormatOutput(w io.Writer, response *Response, format string) error {
	switch format {
	case "json":
		return formatJSON(w, response)
	case "yaml":
		return formatYAML(w, response)
	case "table":
		return formatTable(w, response)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatTable(w io.Writer, r *Response) error {
	magic := r.Magic
	if !r.ValidMagic {
		magic += " (invalid)"
	}

	pageSize := fmt.Sprintf("%d", r.PageSize)
	if r.PageSize != r.HeaderPageSize {
		pageSize += fmt.Sprintf(" (header: %d)", r.HeaderPageSize)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Magic", magic},
		{"Product Name", r.ProductName},
		{"Command Line", r.Cmdline},
		{"Kernel", region(r.KernelSize, r.KernelAddress)},
		{"Ramdisk", region(r.RamdiskSize, r.RamdiskAddress)},
		{"Second Stage", region(r.SecondSize, r.SecondAddress)},
		{"Device Tree", size(r.DeviceTreeSize)},
		{"Tags Address", fmt.Sprintf("0x%08X", r.TagsAddress)},
		{"Page Size", pageSize},
		{"Unique ID", r.UniqueID},
		{"Image ID", r.ImageID},
	})
	table.Render()
	return nil
}

func region(n, addr uint32) string {
	return fmt.Sprintf("%s @ 0x%08X", size(n), addr)
}

func size(n uint32) string {
	if n == 0 {
		return "absent"
	}
	return humanize.IBytes(uint64(n))
}

func formatJSON(w io.Writer, response *Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func formatYAML(w io.Writer, response *Response) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(response)
}
