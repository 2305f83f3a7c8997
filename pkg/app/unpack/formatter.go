package unpack

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// FormatOutput writes unpack results according to output format. The table
// form is a summary; per-region status lines already went to the console.
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

func formatTable(w io.Writer, response *Response) error {
	if len(response.Results) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Section", "Offset", "Size", "Path", "SHA-256"})
	table.SetAutoWrapText(false)
	for _, r := range response.Results {
		if !r.Succeeded() {
			table.Append([]string{r.Kind.String(), fmt.Sprintf("0x%08X", r.Offset), "-", r.Path, "failed"})
			continue
		}
		table.Append([]string{
			r.Kind.String(),
			fmt.Sprintf("0x%08X", r.Offset),
			humanize.IBytes(uint64(r.Size)),
			r.Path,
			r.SHA256,
		})
	}
	table.Render()
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
