package ast

// Compare is a binary comparison: ==, !=, <=, >=, <, >. Comparisons do
// not chain; both operands are rvalues.
type Compare struct {
	Left  Node
	Op    string
	Right Node
}

// RegexMatch is a =~ or !~ test of an rvalue against a String or
// Regexp pattern.
type RegexMatch struct {
	Left    Node
	Op      string
	Pattern Node
}

// In is a membership test: value in collection.
type In struct {
	Value      Node
	Collection Node
}

// NotIn is a negated membership test. The two keywords may be
// separated by arbitrary insignificant whitespace and comments in the
// source; the node keeps no record of that spacing.
type NotIn struct {
	Value      Node
	Collection Node
}

// Not is unary negation of an expression or selector.
type Not struct {
	Expr Node
}

// BoolExpr combines two conditions with and, or, xor, or nand. Chains
// parse left-associatively; and, xor, and nand bind tighter than or.
type BoolExpr struct {
	Left  Node
	Op    string
	Right Node
}

// MethodCall is name(arg, ...) with rvalue arguments.
type MethodCall struct {
	Name string
	Args []Node
}

// RValue marks an operand as a primary reference (string, number,
// selector, array, method call, regexp) rather than a compound
// condition. The grammar layer uses it to disambiguate comparison
// operands; rendering and the tree bridge treat it as transparent.
type RValue struct {
	Value Node
}

// Precedence reports the binding tier of a boolean operator: or binds
// loosest, and/xor/nand share the tighter tier.
func Precedence(op string) int {
	if op == "or" {
		return 1
	}
	return 2
}

func (*Compare) Kind() Kind    { return KindCompare }
func (*RegexMatch) Kind() Kind { return KindRegexMatch }
func (*In) Kind() Kind         { return KindIn }
func (*NotIn) Kind() Kind      { return KindNotIn }
func (*Not) Kind() Kind        { return KindNot }
func (*BoolExpr) Kind() Kind   { return KindBoolExpr }
func (*MethodCall) Kind() Kind { return KindMethodCall }
func (*RValue) Kind() Kind     { return KindRValue }

func (*Compare) node()    {}
func (*RegexMatch) node() {}
func (*In) node()         {}
func (*NotIn) node()      {}
func (*Not) node()        {}
func (*BoolExpr) node()   {}
func (*MethodCall) node() {}
func (*RValue) node()     {}

// Unwrap strips any RValue wrapper from n.
func Unwrap(n Node) Node {
	if rv, ok := n.(*RValue); ok {
		return rv.Value
	}
	return n
}

// IsExpression reports whether n is a compound expression rather than
// a primary reference. Negation of a compound expression renders with
// parentheses.
func IsExpression(n Node) bool {
	switch Unwrap(n).(type) {
	case *Compare, *RegexMatch, *In, *NotIn, *Not, *BoolExpr:
		return true
	default:
		return false
	}
}
