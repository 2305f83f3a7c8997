package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-bootimg/internal/config"
	"github.com/deploymenttheory/go-bootimg/internal/types"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
	"github.com/deploymenttheory/go-bootimg/pkg/app/unpack"
)

var (
	unpackPageSize     uint32
	unpackNoMagicCheck bool

	// Explicit destinations
	unpackHeaderPath  string
	unpackKernelPath  string
	unpackRamdiskPath string
	unpackSecondPath  string
	unpackTreePath    string

	unpackAll      bool
	unpackDir      string
	unpackJobs     int
	unpackManifest string
)

var unpackCmd = &cobra.Command{
	Use:   "unpack [image]",
	Short: "Write boot image regions to files",
	Long: `Copy regions of a boot image out into separate files. Only the declared
bytes of each region are written, never the page padding.

Examples:
  # Unpack kernel and ramdisk to explicit paths
  bootimg unpack boot.img --kernel out/zImage --ramdisk out/ramdisk.cpio.gz

  # Unpack every present region into ./boot
  bootimg unpack boot.img --unpack-all

  # Unpack everything in parallel and record checksums
  bootimg unpack boot.img -a -d extracted -j 4 --manifest extracted/manifest.yaml`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnpack(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().Uint32VarP(&unpackPageSize, "page-size", "p", 0, "override the page size declared in the header")
	unpackCmd.Flags().BoolVar(&unpackNoMagicCheck, "no-magic-check", false, "accept headers without the ANDROID! signature")

	// Destinations
	unpackCmd.Flags().StringVar(&unpackHeaderPath, "header", "", "write the raw header to this path")
	unpackCmd.Flags().StringVar(&unpackKernelPath, "kernel", "", "write the kernel to this path")
	unpackCmd.Flags().StringVar(&unpackRamdiskPath, "ramdisk", "", "write the ramdisk to this path")
	unpackCmd.Flags().StringVar(&unpackSecondPath, "second", "", "write the second stage to this path")
	unpackCmd.Flags().StringVar(&unpackTreePath, "tree", "", "write the device tree to this path")

	unpackCmd.Flags().BoolVarP(&unpackAll, "unpack-all", "a", false, "unpack every present region except the header")
	unpackCmd.Flags().StringVarP(&unpackDir, config.KeyOutputDir, "d", config.DefaultOutputDir, "directory for regions selected by --unpack-all")
	unpackCmd.Flags().IntVarP(&unpackJobs, config.KeyJobs, "j", config.DefaultJobs, "number of regions unpacked in parallel")
	unpackCmd.Flags().StringVar(&unpackManifest, "manifest", "", "write a YAML manifest of unpacked regions to this path")
}

func runUnpack(cmd *cobra.Command, imagePath string) error {
	ctx, cfg, err := newContext(cmd)
	if err != nil {
		return err
	}

	outputs := map[types.RegionKind]string{}
	for kind, path := range map[types.RegionKind]string{
		types.RegionHeader:      unpackHeaderPath,
		types.RegionKernel:      unpackKernelPath,
		types.RegionRamdisk:     unpackRamdiskPath,
		types.RegionSecondStage: unpackSecondPath,
		types.RegionDeviceTree:  unpackTreePath,
	} {
		if path != "" {
			outputs[kind] = path
		}
	}

	request := &unpack.Request{
		Target: app.ImageTarget{
			ImagePath:      imagePath,
			PageSize:       pageSizeFlag(cmd, unpackPageSize),
			SkipMagicCheck: unpackNoMagicCheck,
		},
		Outputs:      outputs,
		UnpackAll:    unpackAll,
		OutputDir:    cfg.OutputDir,
		Jobs:         cfg.Jobs,
		ManifestPath: unpackManifest,
	}

	// A partial failure still reports what was written
	response, err := unpack.Handle(ctx, request)
	if response != nil {
		if ferr := unpack.FormatOutput(ctx.Stdout, response, ctx.OutputFormat); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
