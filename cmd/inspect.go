package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-bootimg/pkg/app"
	"github.com/deploymenttheory/go-bootimg/pkg/app/inspect"
)

var (
	inspectPageSize     uint32
	inspectNoMagicCheck bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [image]",
	Short: "Show the decoded header of a boot image",
	Long: `Decode the boot image header: product name, kernel command line, load
addresses, page size and image identifier.

Examples:
  bootimg inspect boot.img
  bootimg inspect boot.img -o yaml`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Uint32VarP(&inspectPageSize, "page-size", "p", 0, "override the page size declared in the header")
	inspectCmd.Flags().BoolVar(&inspectNoMagicCheck, "no-magic-check", false, "accept headers without the ANDROID! signature")
}

func runInspect(cmd *cobra.Command, imagePath string) error {
	ctx, _, err := newContext(cmd)
	if err != nil {
		return err
	}

	request := &inspect.Request{
		Target: app.ImageTarget{
			ImagePath:      imagePath,
			PageSize:       pageSizeFlag(cmd, inspectPageSize),
			SkipMagicCheck: inspectNoMagicCheck,
		},
	}

	response, err := inspect.Handle(ctx, request)
	if err != nil {
		return err
	}

	return inspect.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
