package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/funvibe/irclone/internal/config"
	"github.com/funvibe/irclone/internal/deepcopy"
	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/irfile"
	"github.com/funvibe/irclone/internal/prettyprinter"
	"github.com/funvibe/irclone/internal/remap"
)

type copied struct {
	original *ir.File
	clone    *ir.File
	remapper *remap.SymbolRemapper
	cfg      *config.Config
	logger   *slog.Logger
}

// load reads the fixture and copies it with the effective configuration.
func (s *settings) load(cmd *cobra.Command, path string) (*copied, error) {
	cfg, err := s.resolve(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd, cfg)

	original, loader, err := irfile.Load(path, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("fixture loaded", "file", path,
		"declarations", len(ir.Declarations(original)),
		"externals", len(loader.Externals()))

	clone, remapper, err := deepcopy.CopyAs(original, deepcopy.Options{
		Factory: deepcopy.SuffixFactory(cfg.Suffix()),
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("copying %s: %w", path, err)
	}
	return &copied{original: original, clone: clone, remapper: remapper, cfg: cfg, logger: logger}, nil
}

func newCopyCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "copy FILE.yaml",
		Short: "Deep-copy a fixture and print both trees and the symbol mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := newStyles(out, c.cfg.Color)

			p := prettyprinter.NewTreePrinter()
			p.Symbol = st.symbol
			p.Print(c.original)
			_, _ = fmt.Fprintln(out, st.header("== original"))
			_, _ = fmt.Fprint(out, p.String())

			p = prettyprinter.NewTreePrinter()
			p.Symbol = st.symbol
			p.Print(c.clone)
			_, _ = fmt.Fprintln(out, st.header("== copy"))
			_, _ = fmt.Fprint(out, p.String())

			_, _ = fmt.Fprintln(out, st.header("== mapping"))
			prettyprinter.RenderMappings(out, c.remapper.Mappings(), s.format)
			return nil
		},
	}
}

func newCheckCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE.yaml",
		Short: "Deep-copy a fixture and verify that no declared symbol is shared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd, args[0])
			if err != nil {
				return err
			}
			st := newStyles(cmd.OutOrStdout(), c.cfg.Color)
			if err := deepcopy.Verify(c.original, c.clone); err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), st.failure("FAIL"))
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d symbols remapped\n",
				st.success("ok"), args[0], c.remapper.Len())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "irclone v%s\n", Version)
		},
	}
}
