package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

func TestPipeline_RunsEveryStageInOrder(t *testing.T) {
	var order []string
	stage := func(name string, fail bool) Processor {
		return ProcessorFunc(func(ctx *PipelineContext) *PipelineContext {
			order = append(order, name)
			if fail {
				ctx.Errors = append(ctx.Errors, errors.New(name))
			}
			return ctx
		})
	}

	root := &ir.File{Symbol: symbols.NewFileSymbol("a.kt", nil)}
	ctx := New(stage("one", true), stage("two", false)).Run(NewPipelineContext(root, nil))

	assert.Equal(t, []string{"one", "two"}, order)
	require.Len(t, ctx.Errors, 1)
	assert.EqualError(t, ctx.Errors[0], "one")
}

func TestNewPipelineContext_FreshRemapper(t *testing.T) {
	root := &ir.File{Symbol: symbols.NewFileSymbol("a.kt", nil)}
	a := NewPipelineContext(root, nil)
	b := NewPipelineContext(root, nil)

	require.NotNil(t, a.Remapper)
	require.NotNil(t, a.Logger)
	assert.NotSame(t, a.Remapper, b.Remapper)
	assert.Equal(t, 0, a.Remapper.Len())
}
