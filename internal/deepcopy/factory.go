package deepcopy

import (
	"github.com/funvibe/irclone/internal/config"
	"github.com/funvibe/irclone/internal/symbols"
)

// SymbolFactory mints the replacement for an original symbol. Both hooks are
// optional: names get config.CopyNameSuffix appended and descriptors are
// forwarded untouched.
type SymbolFactory struct {
	Rename     func(name string) string
	Descriptor func(d symbols.Descriptor) symbols.Descriptor
}

// SuffixFactory renames every copy by appending suffix.
func SuffixFactory(suffix string) *SymbolFactory {
	return &SymbolFactory{Rename: func(name string) string { return name + suffix }}
}

func (f *SymbolFactory) name(name string) string {
	if f == nil || f.Rename == nil {
		return name + config.CopyNameSuffix
	}
	return f.Rename(name)
}

func (f *SymbolFactory) descriptor(d symbols.Descriptor) symbols.Descriptor {
	if f == nil || f.Descriptor == nil {
		return d
	}
	return f.Descriptor(d)
}

// fresh builds the factory function handed to remap.Table.Declare.
func fresh[S symbols.Symbol](f *SymbolFactory, ctor func(string, symbols.Descriptor) S) func(S) S {
	return func(original S) S {
		return ctor(f.name(original.Name()), f.descriptor(original.Descriptor()))
	}
}
