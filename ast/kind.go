package ast

import "fmt"

// Kind identifies a node type. It doubles as the fragment-parsing
// target in parse.Fragment and as the tag vocabulary of the tree
// package.
type Kind int

const (
	KindDocument Kind = iota
	KindSection
	KindPlugin
	KindAttribute
	KindBranch
	KindIf
	KindElseIf
	KindElse
	KindString
	KindBareword
	KindNumber
	KindBoolean
	KindRegexp
	KindSelector
	KindArray
	KindHash
	KindHashEntry
	KindCompare
	KindRegexMatch
	KindIn
	KindNotIn
	KindNot
	KindBoolExpr
	KindMethodCall
	KindRValue
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindDocument:   "Document",
		KindSection:    "Section",
		KindPlugin:     "Plugin",
		KindAttribute:  "Attribute",
		KindBranch:     "Branch",
		KindIf:         "If",
		KindElseIf:     "ElseIf",
		KindElse:       "Else",
		KindString:     "String",
		KindBareword:   "Bareword",
		KindNumber:     "Number",
		KindBoolean:    "Boolean",
		KindRegexp:     "Regexp",
		KindSelector:   "Selector",
		KindArray:      "Array",
		KindHash:       "Hash",
		KindHashEntry:  "HashEntry",
		KindCompare:    "Compare",
		KindRegexMatch: "RegexMatch",
		KindIn:         "In",
		KindNotIn:      "NotIn",
		KindNot:        "Not",
		KindBoolExpr:   "BoolExpr",
		KindMethodCall: "MethodCall",
		KindRValue:     "RValue",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}
