package remap

import (
	"errors"
	"fmt"

	"github.com/funvibe/irclone/internal/symbols"
)

var (
	// ErrNonRemappedSymbol matches every *NonRemappedSymbolError.
	ErrNonRemappedSymbol = errors.New("non-remapped symbol")
	// ErrUnexpectedSymbolKind matches every *UnexpectedSymbolKindError.
	ErrUnexpectedSymbolKind = errors.New("unexpected symbol kind")
)

// NonRemappedSymbolError is returned by a declared lookup for a symbol that
// was never declared. It always points at a traversal-order bug or at a
// call site that should have used the referenced lookup.
type NonRemappedSymbolError struct {
	Kind   symbols.SymbolKind
	Symbol string
}

func (e *NonRemappedSymbolError) Error() string {
	return fmt.Sprintf("non-remapped %s symbol: %s", e.Kind, e.Symbol)
}

func (e *NonRemappedSymbolError) Is(target error) bool {
	return target == ErrNonRemappedSymbol
}

func NewNonRemappedSymbolError(s symbols.Symbol) *NonRemappedSymbolError {
	err := &NonRemappedSymbolError{Symbol: symbols.Describe(s)}
	if !symbols.IsNil(s) {
		err.Kind = s.Kind()
	}
	return err
}

// UnexpectedSymbolKindError is returned by a multi-kind facade when the
// symbol is not one of the kinds the facade's set is closed to.
type UnexpectedSymbolKindError struct {
	Set    string
	Symbol string
	GoType string
}

func (e *UnexpectedSymbolKindError) Error() string {
	return fmt.Sprintf("unexpected %s symbol %s (%s)", e.Set, e.Symbol, e.GoType)
}

func (e *UnexpectedSymbolKindError) Is(target error) bool {
	return target == ErrUnexpectedSymbolKind
}

func NewUnexpectedSymbolKindError(set string, s symbols.Symbol) *UnexpectedSymbolKindError {
	return &UnexpectedSymbolKindError{
		Set:    set,
		Symbol: symbols.Describe(s),
		GoType: fmt.Sprintf("%T", s),
	}
}
