// Package deepcopy clones IR subtrees. Every declaration inside the subtree
// gets a fresh symbol; references to those declarations are rewired to the
// fresh symbols and references to anything outside are kept as they are.
//
// A copy runs in two passes over a pipeline: DeclareProcessor records a
// replacement for each declared symbol, then RebuildProcessor builds the new
// tree from those records.
package deepcopy

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/pipeline"
	"github.com/funvibe/irclone/internal/remap"
)

type Options struct {
	Factory *SymbolFactory // nil uses the default suffix
	Logger  *slog.Logger
}

type Result struct {
	Copy     ir.Node
	Remapper *remap.SymbolRemapper
}

// Copy clones root with a remapper created for this call only. On error no
// partial copy is returned.
func Copy(root ir.Node, opts Options) (*Result, error) {
	ctx := pipeline.NewPipelineContext(root, opts.Logger)
	ctx = pipeline.New(
		&DeclareProcessor{Factory: opts.Factory},
		&RebuildProcessor{},
	).Run(ctx)

	if len(ctx.Errors) > 0 {
		return nil, errors.Join(ctx.Errors...)
	}
	ctx.Logger.Debug("deep copy finished", "mappings", ctx.Remapper.Len())
	return &Result{Copy: ctx.Result, Remapper: ctx.Remapper}, nil
}

// CopyAs is Copy for callers that know the root's concrete type.
func CopyAs[T ir.Node](root T, opts Options) (T, *remap.SymbolRemapper, error) {
	var zero T
	res, err := Copy(root, opts)
	if err != nil {
		return zero, nil, err
	}
	out, ok := res.Copy.(T)
	if !ok {
		return zero, nil, fmt.Errorf("deep copy: got %T, want %T", res.Copy, root)
	}
	return out, res.Remapper, nil
}
