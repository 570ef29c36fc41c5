package irfile

import (
	"gopkg.in/yaml.v3"

	"github.com/funvibe/irclone/internal/symbols"
)

// fileDoc is the top level of a fixture:
//
//	file: box.kt
//	declarations:
//	  - class: Box
//	    type_parameters: [T]
//	    super: Base
//	    members:
//	      - function: get
//	        parameters: [{name: x, type: T}]
//	        returns: T
//	        body:
//	          - var: y
//	            init: {get: x}
//	          - return: {get: y}
type fileDoc struct {
	File         string    `yaml:"file"`
	Descriptor   any       `yaml:"descriptor,omitempty"`
	Declarations []declDoc `yaml:"declarations"`
}

// declDoc is one declaration. Exactly one of the naming keys (class, function,
// constructor, field, property, entry, typealias, package) is set.
type declDoc struct {
	Class       string `yaml:"class,omitempty"`
	Function    string `yaml:"function,omitempty"`
	Constructor bool   `yaml:"constructor,omitempty"`
	Field       string `yaml:"field,omitempty"`
	Property    string `yaml:"property,omitempty"`
	Entry       string `yaml:"entry,omitempty"`
	TypeAlias   string `yaml:"typealias,omitempty"`
	Package     string `yaml:"package,omitempty"`

	Descriptor     any            `yaml:"descriptor,omitempty"`
	Super          string         `yaml:"super,omitempty"`
	TypeParameters []typeParamDoc `yaml:"type_parameters,omitempty"`
	Parameters     []paramDoc     `yaml:"parameters,omitempty"`
	Returns        string         `yaml:"returns,omitempty"`
	Type           string         `yaml:"type,omitempty"`
	Expands        string         `yaml:"expands,omitempty"`
	Init           *exprDoc       `yaml:"init,omitempty"`
	Getter         []exprDoc      `yaml:"getter,omitempty"`
	Members        []declDoc      `yaml:"members,omitempty"`
	Body           []exprDoc      `yaml:"body,omitempty"`

	line    int
	sym     symbols.Symbol       // set while hoisting
	backing *symbols.FieldSymbol // property backing field, set while hoisting
}

type declKind int

const (
	declUnknown declKind = iota
	declClass
	declFunction
	declConstructor
	declField
	declProperty
	declEntry
	declTypeAlias
	declPackage
)

func (d *declDoc) kind() declKind {
	switch {
	case d.Class != "":
		return declClass
	case d.Function != "":
		return declFunction
	case d.Constructor:
		return declConstructor
	case d.Field != "":
		return declField
	case d.Property != "":
		return declProperty
	case d.Entry != "":
		return declEntry
	case d.TypeAlias != "":
		return declTypeAlias
	case d.Package != "":
		return declPackage
	default:
		return declUnknown
	}
}

func (d *declDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain declDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.line = n.Line
	return nil
}

// typeParamDoc is either a bare name ("T") or {name: T, bounds: [Comparable<T>]}.
type typeParamDoc struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds,omitempty"`
}

func (t *typeParamDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		t.Name = n.Value
		return nil
	}
	type plain typeParamDoc
	return n.Decode((*plain)(t))
}

type paramDoc struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type,omitempty"`
	Default    *exprDoc `yaml:"default,omitempty"`
	Descriptor any      `yaml:"descriptor,omitempty"`
}

// exprDoc is one statement or expression; the first key found in
// exprKeys decides what it is.
type exprDoc struct {
	Var      string    `yaml:"var,omitempty"`
	Type     string    `yaml:"type,omitempty"`
	Init     *exprDoc  `yaml:"init,omitempty"`
	Inline   string    `yaml:"inline,omitempty"`
	Body     []exprDoc `yaml:"body,omitempty"`
	Block    []exprDoc `yaml:"block,omitempty"`
	Return   *exprDoc  `yaml:"return,omitempty"`
	From     string    `yaml:"from,omitempty"`
	Set      string    `yaml:"set,omitempty"`
	Get      string    `yaml:"get,omitempty"`
	Field    string    `yaml:"field,omitempty"`
	Receiver *exprDoc  `yaml:"receiver,omitempty"`
	Value    *exprDoc  `yaml:"value,omitempty"`
	Enum     string    `yaml:"enum,omitempty"`
	Property string    `yaml:"property,omitempty"`
	Call     string    `yaml:"call,omitempty"`
	TypeArgs []string  `yaml:"type_args,omitempty"`
	Args     []exprDoc `yaml:"args,omitempty"`
	ClassRef string    `yaml:"class_ref,omitempty"`
	Const    any       `yaml:"const,omitempty"`

	line int
	keys map[string]bool
}

var exprKeys = []string{"var", "inline", "block", "return", "set", "get", "field", "enum", "property", "call", "class_ref", "const"}

func (e *exprDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain exprDoc
	if err := n.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = n.Line
	e.keys = make(map[string]bool)
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			e.keys[n.Content[i].Value] = true
		}
	}
	return nil
}

func (e *exprDoc) kind() string {
	for _, k := range exprKeys {
		if e.keys[k] {
			return k
		}
	}
	return ""
}
