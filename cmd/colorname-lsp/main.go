package main

import (
	"os"

	"github.com/jsvensson/colorname/internal/config"
	"github.com/jsvensson/colorname/internal/lsp"
	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagVerbosity int
	version       = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "colorname-lsp",
	Short:   "Language server showing color names for color literals and palette files",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOptional(flagConfig)
		if err != nil {
			return err
		}
		store, err := palette.Load(cfg.PaletteFiles...)
		if err != nil {
			return err
		}

		s := lsp.NewServer(version, store, match.Options{List: cfg.List, IgnoreAlphaChannel: cfg.IgnoreAlpha})
		return s.Run(flagVerbosity)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", config.DefaultFile, "path to config HCL file")
	rootCmd.Flags().IntVar(&flagVerbosity, "verbosity", 1, "log verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
