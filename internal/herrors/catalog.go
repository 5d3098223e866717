package herrors

// Message catalog — standardized format strings shared by the loader,
// dispatcher, and evaluator so diagnostics for the same kind of
// mistake read identically regardless of which component raised them.
//
// Grounded on internal/interp/errors/catalog.go's const-catalog
// convention.
const (
	// Loader / registry (C3)
	MsgDuplicateClass     = "duplicate class name %q"
	MsgUnknownSuperclass  = "unknown superclass %q for class %q"
	MsgUnknownType        = "unknown type %q"
	MsgDuplicateField     = "duplicate field %q in class %q"
	MsgDuplicateParam     = "duplicate parameter %q in method %q"
	MsgDuplicateOverload  = "duplicate method %q with identical parameter types in class %q"
	MsgBadInitializerType = "initializer for field %q does not match declared type %q"
	MsgTemplateArity      = "generic class %q expects %d type argument(s), got %d"
	MsgNoMainClass        = "no class named %q found"
	MsgMalformedForm      = "malformed %s form"

	// Type checking (C2) / assignment
	MsgAssignMismatch = "cannot assign value of type %s to destination of type %s"
	MsgReturnMismatch = "method %q: return value of type %s is not assignable to declared return type %s"
	MsgVoidReturnsValue = "method %q is declared void but returned a value"

	// Dispatch (C8)
	MsgNoMatchingOverload = "no overload of method %q matches the given argument types"
	MsgNoSuper            = "%q has no superclass"
	MsgCallOnNonObject    = "cannot call method %q on a non-object value"

	// Environment (C5)
	MsgUndefinedName = "undefined name %q"

	// Statement/expression evaluator (C6/C7)
	MsgPredicateNotBool  = "%s predicate must evaluate to bool"
	MsgOperandsNotInt    = "operator %q requires int operands"
	MsgOperandsNotString = "operator %q requires two string operands"
	MsgOperandsNotBool   = "operator %q requires bool operands"
	MsgBadEquality       = "cannot compare values of type %s and %s with %q"
	MsgThrowNotString    = "throw expects a string-typed expression"
	MsgNullDereference   = "null dereference calling method %q"
	MsgNotAnInteger      = "input for %q is not a valid integer"
	MsgUnknownStatement  = "unknown statement form %q"
	MsgUnknownExpression = "unknown expression form %q"
)
