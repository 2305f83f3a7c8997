package sections

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes a region listing according to output format
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

// formatTable writes one line per region:
//
//	0x00000800 - Kernel         (size: 5.3 MiB)
func formatTable(w io.Writer, response *Response) error {
	for _, s := range response.Regions {
		if _, err := fmt.Fprintf(w, "0x%08X - %-14s (size: %s)\n", s.Offset, s.Name, humanize.IBytes(s.Size)); err != nil {
			return err
		}
	}
	return nil
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
