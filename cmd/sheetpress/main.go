package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/sheetpress/sheetpress"
	"github.com/sheetpress/sheetpress/batch"
	"github.com/sheetpress/sheetpress/compose"
	"github.com/sheetpress/sheetpress/docinfo"
	"github.com/sheetpress/sheetpress/pages"
	"github.com/sheetpress/sheetpress/titleblock"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "sheetpress",
		Short: "Batch-compose engineering drawings onto title-block sheets",
		Long: `Sheetpress resizes customer drawing PDFs into the safe zone of a
fixed-size A3 landscape sheet and overlays a title-block template on top.

Batches survive individual failures: a missing or corrupt file is recorded
and the remaining files are still processed.`,
		Example: `  sheetpress process --template titleblock.pdf --output out/ drawings/*.pdf
  sheetpress process --template titleblock.pdf --exclude "1,3-5" plan.pdf
  sheetpress page --template titleblock.pdf --page 2 plan.pdf out.pdf
  sheetpress template --project "Bridge Retrofit" titleblock.pdf`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "sheetpress.yaml", "Configuration file")

	rootCmd.AddCommand(newProcessCommand(&configFile))
	rootCmd.AddCommand(newPageCommand(&configFile))
	rootCmd.AddCommand(newTemplateCommand(&configFile))
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// metadataFlags binds the title-block metadata fields to a flag set.
func metadataFlags(flags *pflag.FlagSet, meta *compose.Metadata) {
	flags.StringVar(&meta.Project, "project", "", "Project name for the title block")
	flags.StringVar(&meta.Client, "client", "", "Client name for the title block")
	flags.StringVar(&meta.Date, "date", "", "Date for the title block")
	flags.StringVar(&meta.DrawnBy, "drawn-by", "", "Author initials for the title block")
}

// mergeMetadata overlays flag values onto the configured defaults.
func mergeMetadata(base, flags compose.Metadata) compose.Metadata {
	if flags.Project != "" {
		base.Project = flags.Project
	}
	if flags.Client != "" {
		base.Client = flags.Client
	}
	if flags.Date != "" {
		base.Date = flags.Date
	}
	if flags.DrawnBy != "" {
		base.DrawnBy = flags.DrawnBy
	}
	return base
}

func newProcessCommand(configFile *string) *cobra.Command {
	var templatePath string
	var outputDir string
	var excludeSpec string
	var meta compose.Metadata

	cmd := &cobra.Command{
		Use:   "process [flags] <drawing1.pdf> [drawing2.pdf...]",
		Short: "Compose a batch of drawings onto title-block sheets",
		Long: `Process one or more drawing PDFs. Every page of each input is scaled
into the sheet's safe zone and the template's first page is overlaid on top.
Each input produces one output named "processed_<name>" in the output folder.

Pages can be excluded with a 1-based range list, e.g. --exclude "1,3-5".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sheetpress.LoadConfig(*configFile)
			if err != nil {
				return err
			}
			if templatePath == "" {
				templatePath = cfg.Template
			}
			if templatePath == "" {
				return fmt.Errorf("--template is required (or set template in %s)", *configFile)
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			compositor, err := compose.New(cfg.Geometry.Geometry())
			if err != nil {
				return err
			}

			runner := &batch.Runner{
				Compositor:   compositor,
				TemplatePath: templatePath,
				OutputDir:    outputDir,
				Exclude:      pages.Parse(excludeSpec),
				Metadata:     mergeMetadata(cfg.Metadata, meta),
				Progress:     terminalProgress(),
			}

			result := runner.Run(cmd.Context(), args)
			printSummary(result)
			if !result.Ok() {
				return fmt.Errorf("%d of %d file(s) failed", result.Failed, result.Total())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Title-block template PDF")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output folder")
	cmd.Flags().StringVarP(&excludeSpec, "exclude", "x", "", "Pages to exclude, e.g. \"1,3-5\" (1-based)")
	metadataFlags(cmd.Flags(), &meta)

	return cmd
}

func newPageCommand(configFile *string) *cobra.Command {
	var templatePath string
	var pageNumber int

	cmd := &cobra.Command{
		Use:   "page [flags] <drawing.pdf> <output.pdf>",
		Short: "Compose a single drawing page onto one sheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sheetpress.LoadConfig(*configFile)
			if err != nil {
				return err
			}
			if templatePath == "" {
				templatePath = cfg.Template
			}
			if templatePath == "" {
				return fmt.Errorf("--template is required (or set template in %s)", *configFile)
			}
			if pageNumber < 1 {
				return fmt.Errorf("--page is 1-based, got %d", pageNumber)
			}

			compositor, err := compose.New(cfg.Geometry.Geometry())
			if err != nil {
				return err
			}
			return compositor.ComposeOne(args[0], templatePath, args[1], pageNumber-1)
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Title-block template PDF")
	cmd.Flags().IntVarP(&pageNumber, "page", "p", 1, "Page to compose (1-based)")

	return cmd
}

func newTemplateCommand(configFile *string) *cobra.Command {
	var meta compose.Metadata

	cmd := &cobra.Command{
		Use:   "template [flags] <output.pdf>",
		Short: "Generate a starter title-block template",
		Long: `Generate a default title-block template: an A3 landscape page with a
framed border and a header band carrying the project metadata. The drawing
window is left unpainted so composed content shows through the frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sheetpress.LoadConfig(*configFile)
			if err != nil {
				return err
			}
			return titleblock.Generate(args[0], mergeMetadata(cfg.Metadata, meta))
		},
	}

	metadataFlags(cmd.Flags(), &meta)
	return cmd
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <drawing.pdf>",
		Short: "Show page structure of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := docinfo.Inspect(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d page(s)\n", info.Path, info.PageCount)
			for _, page := range info.Pages {
				orient := "portrait"
				if page.Landscape() {
					orient = "landscape"
				}
				fmt.Printf("  page %d: %.1f x %.1f pts (%s)\n", page.Number, page.Width, page.Height, orient)
			}
			if info.Preview != "" {
				fmt.Printf("  text: %s\n", info.Preview)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sheetpress %s (commit: %s, built: %s, go: %s)\n",
				version, commit, date, runtime.Version())
		},
	}
}

// terminalProgress returns a progress callback that rewrites a single status
// line, or nil when stderr is not a terminal (the logger already reports
// per-file outcomes for non-interactive runs).
func terminalProgress() batch.ProgressFunc {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	output := termenv.NewOutput(os.Stderr)
	return func(done, total int, file string) {
		output.ClearLine()
		fmt.Fprintf(os.Stderr, "\r[%d/%d] %s", done, total, file)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func printSummary(result batch.Result) {
	renderer := lipgloss.NewRenderer(os.Stderr)
	success := renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failed := renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warning := renderer.NewStyle().Foreground(lipgloss.Color("3"))

	fmt.Fprintf(os.Stderr, "\n%s %d file(s) processed", success.Render("✓"), result.Succeeded)
	if result.Empty > 0 {
		fmt.Fprintf(os.Stderr, ", %s %d with no pages to process", warning.Render("⊘"), result.Empty)
	}
	if result.Failed > 0 {
		fmt.Fprintf(os.Stderr, ", %s %d failed", failed.Render("✗"), result.Failed)
	}
	fmt.Fprintf(os.Stderr, "\n  output folder: %s\n", result.OutputDir)
	for _, name := range result.FailedFiles {
		fmt.Fprintf(os.Stderr, "  %s %s\n", failed.Render("✗"), name)
	}
}
