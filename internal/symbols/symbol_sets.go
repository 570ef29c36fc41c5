package symbols

// Multi-kind symbols. Each interface is closed to the types listed on it:
// the marker methods are unexported, so only this package can add members.
// Code dispatching on these sets must handle every member and treat anything
// else as a broken invariant.

// ValueSymbol is a ValueParameterSymbol or a VariableSymbol.
type ValueSymbol interface {
	Symbol
	valueSymbol()
}

// FunctionLikeSymbol is a FunctionSymbol or a ConstructorSymbol.
type FunctionLikeSymbol interface {
	Symbol
	functionLikeSymbol()
}

// ClassifierSymbol is a ClassSymbol or a TypeParameterSymbol.
type ClassifierSymbol interface {
	Symbol
	classifierSymbol()
}

// ReturnTargetSymbol is anything a return can leave: a function, a
// constructor or a returnable block.
type ReturnTargetSymbol interface {
	Symbol
	returnTargetSymbol()
}

func (*ValueParameterSymbol) valueSymbol() {}
func (*VariableSymbol) valueSymbol()       {}

func (*FunctionSymbol) functionLikeSymbol()    {}
func (*ConstructorSymbol) functionLikeSymbol() {}

func (*ClassSymbol) classifierSymbol()         {}
func (*TypeParameterSymbol) classifierSymbol() {}

func (*FunctionSymbol) returnTargetSymbol()        {}
func (*ConstructorSymbol) returnTargetSymbol()     {}
func (*ReturnableBlockSymbol) returnTargetSymbol() {}
