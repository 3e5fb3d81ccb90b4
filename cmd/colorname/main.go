package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/colorname/internal/config"
	"github.com/jsvensson/colorname/internal/format"
	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
	"github.com/jsvensson/colorname/internal/render"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig      string
	flagList        string
	flagIgnoreAlpha bool
	flagPalettes    []string
	flagFormat      string
	flagVerbose     int
	flagOut         string
	flagTemplates   string
	flagApp         []string
	flagCheck       bool
	version         = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "colorname",
	Short:   "Find the closest named color for hex, rgb() and hsl() color codes",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <code>...",
	Short: "Name one or more color codes",
	Long: `Name one or more color codes. Codes may be hex (#RGB, #RGBA, #RRGGBB,
#RRGGBBAA), rgb()/rgba(), hsl()/hsla() or CSS color keywords.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runName,
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "List the available palettes",
	Args:  cobra.NoArgs,
	RunE:  runLists,
}

var renderCmd = &cobra.Command{
	Use:   "render <code>...",
	Short: "Render templates with the names of the given color codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette and config files",
	Long:  "Format one or more .hcl palette or config files in-place. Palette keys are rewritten as uppercase hex. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", config.DefaultFile, "path to config HCL file")
	pf.StringVarP(&flagList, "list", "l", "", "search a single palette (curated, web, werner or a custom one)")
	pf.BoolVarP(&flagIgnoreAlpha, "ignore-alpha", "a", false, "ignore the alpha channel when matching")
	pf.StringArrayVar(&flagPalettes, "palette", nil, "load extra palettes from an HCL file (can be repeated)")
	pf.CountVarP(&flagVerbose, "verbose", "v", "log verbosity (repeat for more)")

	nameCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: text, json or css")
	renderCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	renderCmd.Flags().StringArrayVar(&flagApp, "app", nil, "render only specific templates (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flags on top. A missing
// file is only an error when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadOptional(flagConfig)
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("list") {
		cfg.List = flagList
	}
	if cmd.Flags().Changed("ignore-alpha") {
		cfg.IgnoreAlpha = flagIgnoreAlpha
	}
	if cmd.Flags().Changed("format") {
		if err := config.ValidateFormat(flagFormat); err != nil {
			return config.Config{}, err
		}
		cfg.Format = flagFormat
	}
	cfg.PaletteFiles = append(cfg.PaletteFiles, flagPalettes...)
	return cfg, nil
}

func options(cfg config.Config) match.Options {
	return match.Options{List: cfg.List, IgnoreAlphaChannel: cfg.IgnoreAlpha}
}

func runName(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := palette.Load(cfg.PaletteFiles...)
	if err != nil {
		return err
	}

	m := match.New(store)
	opts := options(cfg)

	var results []result
	failed := 0
	for _, code := range args {
		out, err := m.Match(code, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "No name for %q: %v\n", code, err)
			failed++
			continue
		}
		results = append(results, result{Input: code, Output: out})
	}

	if err := writeResults(cmd.OutOrStdout(), cfg.Format, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d codes had no name: %w", failed, len(args), match.ErrNoMatch)
	}
	return nil
}

func runLists(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := palette.Load(cfg.PaletteFiles...)
	if err != nil {
		return err
	}
	return writeLists(cmd.OutOrStdout(), store)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := palette.Load(cfg.PaletteFiles...)
	if err != nil {
		return err
	}

	r := &render.Renderer{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Apps:         flagApp,
		Matcher:      match.New(store),
		Options:      options(cfg),
	}

	if err := r.Run(args); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d colors in %s\n", len(args), flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		changed, err := format.File(path, !flagCheck)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}
		if !changed {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, match.ErrNoMatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
