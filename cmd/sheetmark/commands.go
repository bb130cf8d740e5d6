package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sheetmark/internal/config"
	"sheetmark/internal/converter"
	"sheetmark/internal/exporter"
	"sheetmark/internal/logger"
	"sheetmark/internal/outline"
	"sheetmark/internal/ui"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	verbose    bool
	noProgress bool
	pause      *bool
}

func newRootCommand(pause *bool) *cobra.Command {
	g := &globalFlags{pause: pause}

	root := &cobra.Command{
		Use:           "sheetmark",
		Short:         appDesc,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: appName + ` runs two independent batch steps:

  convert   every workbook (.xlsx, .xls, .xlsm) under the input directory
            becomes one Markdown table file per sheet
  outline   every Markdown table file in the input directory is rewritten
            as a heading/bullet outline`,
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "config.yaml", "Path to configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	root.PersistentFlags().BoolVar(&g.noProgress, "no-progress", false, "Disable progress bars")
	root.PersistentFlags().BoolVar(pause, "pause", false, "Wait for Enter before exiting")

	root.AddCommand(newConvertCommand(g))
	root.AddCommand(newOutlineCommand(g))

	return root
}

func newConvertCommand(g *globalFlags) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert spreadsheets into one Markdown table per sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(g)
			if err != nil {
				return err
			}
			defer logger.Close()

			overridePath(&cfg.Convert.InputDir, input)
			overridePath(&cfg.Convert.OutputDir, output)
			if logger.IsVerbose() {
				cfg.Print()
			}

			return runConvert(cfg, newPipeline(g, ui.PhaseScanning, ui.PhaseConverting))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Override convert.input_dir")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Override convert.output_dir")
	return cmd
}

func newOutlineCommand(g *globalFlags) *cobra.Command {
	var input, output, formats string

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Rewrite Markdown tables as heading/bullet outlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(g)
			if err != nil {
				return err
			}
			defer logger.Close()

			overridePath(&cfg.Outline.InputDir, input)
			overridePath(&cfg.Outline.OutputDir, output)
			if formats != "" {
				cfg.Outline.Formats = strings.Split(formats, ",")
			}
			if logger.IsVerbose() {
				cfg.Print()
			}

			return runOutline(cfg, newPipeline(g, ui.PhaseFormatting))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Override outline.input_dir")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Override outline.output_dir")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "Comma-separated output formats (md,html,word)")
	return cmd
}

// setup loads configuration and starts the logger
func setup(g *globalFlags) (*config.Config, error) {
	printBanner()

	cfg, err := config.Load(g.configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return nil, err
	}

	if err := logger.Init(os.Stdout, cfg.LogPath(), g.verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return nil, err
	}
	logger.Debug("Configuration loaded from %s", g.configPath)

	return cfg, nil
}

// overridePath replaces a configured directory with a flag value made absolute
func overridePath(dst *string, value string) {
	if value == "" {
		return
	}
	if abs, err := filepath.Abs(value); err == nil {
		value = abs
	}
	*dst = value
}

func newPipeline(g *globalFlags, phases ...ui.Phase) *ui.Pipeline {
	p := ui.NewPipeline(phases)
	if g.noProgress {
		p.Disable()
	}
	return p
}

func runConvert(cfg *config.Config, pipeline *ui.Pipeline) error {
	if err := config.EnsureDir(cfg.Convert.OutputDir); err != nil {
		logger.Error("%v", err)
		return err
	}

	conv := converter.New(converter.Options{
		InputDir:   cfg.Convert.InputDir,
		OutputDir:  cfg.Convert.OutputDir,
		Extensions: cfg.Convert.Extensions,
	}, pipeline)

	report, err := conv.Run()
	if err != nil {
		logger.Error("Conversion failed: %v", err)
		return err
	}

	if len(report.Failures) > 0 {
		logger.Warn("%d file(s) could not be converted. See %s", len(report.Failures), logger.GetLogFilePath())
	}
	logger.Info("✅ Conversion complete. Check [%s] directory.", cfg.Convert.OutputDir)
	return nil
}

func runOutline(cfg *config.Config, pipeline *ui.Pipeline) error {
	exporters, unknown := exporter.Get(cfg.Outline.Formats)
	for _, name := range unknown {
		logger.Warn("Unknown output format %q ignored", name)
	}
	if len(exporters) == 0 {
		err := errors.New("no valid output format selected")
		logger.Error("%v", err)
		return err
	}

	report, err := outline.Batch(outline.BatchOptions{
		InputDir:  cfg.Outline.InputDir,
		OutputDir: cfg.Outline.OutputDir,
		Encoding:  cfg.Outline.Encoding,
	}, exporters, pipeline)
	if err != nil {
		logger.Error("Outline failed: %v", err)
		return err
	}

	if len(report.ReadErrors) > 0 {
		logger.Warn("%d file(s) could not be read and were written with an empty outline", len(report.ReadErrors))
	}
	if n := logger.FailureCount(); n > 0 {
		logger.Warn("%d failure(s) recorded in %s", n, logger.GetLogFilePath())
	}
	logger.Info("✅ Outline complete. Check [%s] directory.", cfg.Outline.OutputDir)
	return nil
}
