package deepcopy

import (
	"errors"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/pipeline"
	"github.com/funvibe/irclone/internal/remap"
	"github.com/funvibe/irclone/internal/symbols"
)

var errNoRoot = errors.New("deep copy: nothing to copy")

// DeclareSymbols visits root in pre-order and declares a replacement for the
// symbol of every declaration, parents before children.
func DeclareSymbols(root ir.Node, r *remap.SymbolRemapper, f *SymbolFactory) {
	ir.Inspect(root, func(n ir.Node) bool {
		switch d := n.(type) {
		case *ir.File:
			r.Files.Declare(d.Symbol, fresh(f, symbols.NewFileSymbol))
		case *ir.ExternalPackageFragment:
			r.ExternalPackageFragments.Declare(d.Symbol, fresh(f, symbols.NewExternalPackageFragmentSymbol))
		case *ir.Class:
			r.Classes.Declare(d.Symbol, fresh(f, symbols.NewClassSymbol))
		case *ir.EnumEntry:
			r.EnumEntries.Declare(d.Symbol, fresh(f, symbols.NewEnumEntrySymbol))
		case *ir.Field:
			r.Fields.Declare(d.Symbol, fresh(f, symbols.NewFieldSymbol))
		case *ir.Property:
			r.Properties.Declare(d.Symbol, fresh(f, symbols.NewPropertySymbol))
		case *ir.TypeAlias:
			r.TypeAliases.Declare(d.Symbol, fresh(f, symbols.NewTypeAliasSymbol))
		case *ir.Function:
			r.Functions.Declare(d.Symbol, fresh(f, symbols.NewFunctionSymbol))
		case *ir.Constructor:
			r.Constructors.Declare(d.Symbol, fresh(f, symbols.NewConstructorSymbol))
		case *ir.TypeParameter:
			r.TypeParameters.Declare(d.Symbol, fresh(f, symbols.NewTypeParameterSymbol))
		case *ir.ValueParameter:
			r.ValueParameters.Declare(d.Symbol, fresh(f, symbols.NewValueParameterSymbol))
		case *ir.Variable:
			r.Variables.Declare(d.Symbol, fresh(f, symbols.NewVariableSymbol))
		case *ir.ReturnableBlock:
			r.ReturnableBlocks.Declare(d.Symbol, fresh(f, symbols.NewReturnableBlockSymbol))
		}
		return true
	})
}

// DeclareProcessor is the first pipeline stage of a deep copy.
type DeclareProcessor struct {
	Factory *SymbolFactory
}

func (p *DeclareProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ir.IsNil(ctx.Root) {
		ctx.Errors = append(ctx.Errors, errNoRoot)
		return ctx
	}
	DeclareSymbols(ctx.Root, ctx.Remapper, p.Factory)
	ctx.Logger.Debug("symbols declared", "count", ctx.Remapper.Len())
	return ctx
}
