// Command irclone loads an IR fixture, deep-copies it and prints the result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/funvibe/irclone/internal/config"
)

// Version can be set at build time using: -ldflags "-X main.Version=1.2.3"
var Version = "0.1.0"

// settings are the persistent flags shared by every subcommand.
type settings struct {
	configFile string
	suffix     string
	color      string
	format     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:   "irclone",
		Short: "Deep-copy IR fixtures with full symbol remapping",
		Long: `irclone reads an IR fixture written in YAML, clones it so that every
declaration gets a fresh symbol, and shows how the symbols were remapped.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.configFile, "config", "", "config file (default: nearest irclone.yaml)")
	root.PersistentFlags().StringVar(&s.suffix, "suffix", config.CopyNameSuffix, "suffix appended to copied symbol names")
	root.PersistentFlags().StringVar(&s.color, "color", "", "color output (auto|always|never)")
	root.PersistentFlags().StringVar(&s.format, "format", config.FormatTable, "mapping table format (table|markdown)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log every remapping step")

	_ = root.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newCopyCmd(s))
	root.AddCommand(newCheckCmd(s))
	root.AddCommand(newVersionCmd())
	return root
}

// resolve merges the config file with flags set on the command line.
func (s *settings) resolve(cmd *cobra.Command) (*config.Config, error) {
	path := s.configFile
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.FindConfig(wd); err != nil {
			return nil, err
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("suffix") {
		cfg.NameSuffix = &s.suffix
	}
	if flags.Changed("color") {
		switch s.color {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Color = s.color
		default:
			return nil, fmt.Errorf("--color %q must be one of auto, always, never", s.color)
		}
	}
	switch s.format {
	case config.FormatTable, config.FormatMarkdown, config.FormatMD:
	default:
		return nil, fmt.Errorf("--format %q must be one of table, markdown", s.format)
	}
	if s.verbose {
		cfg.LogLevel = config.LogLevelDebug
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
