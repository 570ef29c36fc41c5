package pipeline

import (
	"log/slog"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/remap"
)

// PipelineContext carries one deep copy through its stages.
type PipelineContext struct {
	Root     ir.Node               // subtree being copied
	Remapper *remap.SymbolRemapper // owned by this copy only
	Result   ir.Node               // copied subtree, set by the rebuild stage
	Errors   []error
	Logger   *slog.Logger
}

// NewPipelineContext starts a context for copying root with a fresh remapper.
func NewPipelineContext(root ir.Node, logger *slog.Logger) *PipelineContext {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PipelineContext{
		Root:     root,
		Remapper: remap.NewSymbolRemapper(logger),
		Logger:   logger,
	}
}

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. Every stage runs; stages that depend on earlier
// output check ctx.Errors themselves.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
