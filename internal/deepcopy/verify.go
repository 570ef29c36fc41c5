package deepcopy

import (
	"errors"
	"fmt"

	"github.com/funvibe/irclone/internal/ir"
	"github.com/funvibe/irclone/internal/symbols"
)

// Verify checks that clone is a proper deep copy of original: it declares the
// same number of symbols, none of them shared with original, and it never
// refers to a symbol declared inside original.
func Verify(original, clone ir.Node) error {
	local := make(map[symbols.Symbol]bool)
	originalDecls := ir.Declarations(original)
	for _, d := range originalDecls {
		local[d.GetSymbol()] = true
	}

	var errs []error
	copyDecls := ir.Declarations(clone)
	if len(copyDecls) != len(originalDecls) {
		errs = append(errs, fmt.Errorf("clone declares %d symbols, original declares %d",
			len(copyDecls), len(originalDecls)))
	}

	ir.Inspect(clone, func(n ir.Node) bool {
		if d, ok := n.(ir.Declaration); ok && local[d.GetSymbol()] {
			errs = append(errs, fmt.Errorf("declaration shares symbol %s with the original",
				symbols.Describe(d.GetSymbol())))
		}
		for _, ref := range ir.References(n) {
			if local[ref] {
				errs = append(errs, fmt.Errorf("reference to %s still points into the original",
					symbols.Describe(ref)))
			}
		}
		return true
	})
	return errors.Join(errs...)
}
