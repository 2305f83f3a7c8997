package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-bootimg/pkg/app"
	"github.com/deploymenttheory/go-bootimg/pkg/app/sections"
)

var (
	sectionsPageSize     uint32
	sectionsNoMagicCheck bool
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [image]",
	Short: "List the regions of a boot image",
	Long: `Print the offset and size of every region present in a boot image.

Examples:
  # List regions using the page size stored in the header
  bootimg sections boot.img

  # Override a header that declares a page size of 0
  bootimg sections boot.img --page-size 2048

  # Machine readable listing
  bootimg sections boot.img -o json`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSections(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)

	sectionsCmd.Flags().Uint32VarP(&sectionsPageSize, "page-size", "p", 0, "override the page size declared in the header")
	sectionsCmd.Flags().BoolVar(&sectionsNoMagicCheck, "no-magic-check", false, "accept headers without the ANDROID! signature")
}

func runSections(cmd *cobra.Command, imagePath string) error {
	ctx, _, err := newContext(cmd)
	if err != nil {
		return err
	}

	request := &sections.Request{
		Target: app.ImageTarget{
			ImagePath:      imagePath,
			PageSize:       pageSizeFlag(cmd, sectionsPageSize),
			SkipMagicCheck: sectionsNoMagicCheck,
		},
	}

	response, err := sections.Handle(ctx, request)
	if err != nil {
		return err
	}

	return sections.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
