package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-bootimg/internal/config"
	"github.com/deploymenttheory/go-bootimg/pkg/app"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
	noColor      bool
	configFile   string
)

var rootCmd = &cobra.Command{
	Use:   "bootimg",
	Short: "Parse and unpack Samsung-variant Android boot images",
	Long: `bootimg reads the fixed 616-byte header of an "ANDROID!" boot image,
computes where each region lives and copies regions out into separate files.

Commands:
  sections    List the offset and size of every region
  unpack      Write regions to files
  inspect     Show the decoded header fields`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the command context, stopping pending unpack jobs.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, config.KeyVerbose, "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, config.KeyQuiet, "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, config.KeyOutput, "o", config.DefaultOutputFormat, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, config.KeyNoColor, false, "disable coloured status output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "read settings from this YAML file")
}

// newContext resolves settings for cmd and builds the application context
func newContext(cmd *cobra.Command) (*app.Context, *config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, nil, app.NewError(app.ErrCodeInvalidInput, "invalid configuration", err)
	}

	ctx := app.NewContext()
	if parent := cmd.Context(); parent != nil {
		ctx.Context = parent
	}
	ctx.OutputFormat = cfg.OutputFormat
	ctx.Verbose = cfg.Verbose
	ctx.Quiet = cfg.Quiet
	ctx.NoColor = cfg.NoColor
	ctx.Stdout = cmd.OutOrStdout()
	ctx.Stderr = cmd.ErrOrStderr()
	ctx.Configure()

	return ctx, cfg, nil
}

// pageSizeFlag returns the page size override when the flag was set
func pageSizeFlag(cmd *cobra.Command, value uint32) *uint32 {
	if !cmd.Flags().Changed("page-size") {
		return nil
	}
	return &value
}
