package status

// Literal is the string-literal form of a status. Only the three constants
// below are meaningful, but a plain string conversion can produce any value,
// so every function taking a Literal handles the rest.
type Literal string

const (
	LiteralSuccess Literal = "Success"
	LiteralFailure Literal = "Failure"
	LiteralPending Literal = "Pending"
)

// Codes is the lookup table from literal to code. It plays the role a
// constant object plays in languages without closed enumerations.
var Codes = map[Literal]Status{
	LiteralSuccess: Success,
	LiteralFailure: Failure,
	LiteralPending: Pending,
}

// MessageLiteral returns the outcome sentence for l. Anything that is not one
// of the three literals is reported as pending.
func MessageLiteral(l Literal) string {
	switch l {
	case LiteralSuccess:
		return msgSuccess
	case LiteralFailure:
		return msgFailure
	case LiteralPending:
		fallthrough
	default:
		return msgPending
	}
}

// Valid reports whether l is one of the three literals.
func (l Literal) Valid() bool {
	_, ok := Codes[l]
	return ok
}

// Code looks l up in Codes. Unknown literals resolve to Pending.
func (l Literal) Code() Status {
	if s, ok := Codes[l]; ok {
		return s
	}
	return Pending
}

// Literals returns the literal set in declaration order. Map iteration order
// is random, so Codes cannot be used for that.
func Literals() []Literal {
	return []Literal{LiteralSuccess, LiteralFailure, LiteralPending}
}
