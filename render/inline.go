package render

import (
	"fmt"
	"strings"

	"github.com/elastide/lsconf/ast"
)

// inline renders a node in single-line position: scalar literals,
// arrays, method calls, and the expression forms used in branch
// guards. Hashes and plugins in array position keep their multi-line
// body, trimmed of outer indentation.
func (es *RenderState) inline(n ast.Node) (string, error) {
	switch x := n.(type) {
	case *ast.String:
		return es.color(ast.KindString, ValueColor, x.Lexeme), nil
	case *ast.Bareword:
		return es.color(ast.KindBareword, ValueColor, x.Word), nil
	case *ast.Number:
		return es.color(ast.KindNumber, ValueColor, x.Source()), nil
	case *ast.Boolean:
		if x.Value {
			return es.color(ast.KindBoolean, ValueColor, "true"), nil
		}
		return es.color(ast.KindBoolean, ValueColor, "false"), nil
	case *ast.Regexp:
		return es.color(ast.KindRegexp, ValueColor, "/"+x.Body+"/"), nil
	case *ast.Selector:
		return es.color(ast.KindSelector, ValueColor, x.Raw), nil
	case *ast.Array:
		return es.array(x)
	case *ast.MethodCall:
		return es.methodCall(x)
	case *ast.RValue:
		return es.inline(x.Value)
	case *ast.Compare:
		return es.binary(x.Left, x.Op, x.Right)
	case *ast.RegexMatch:
		return es.binary(x.Left, x.Op, x.Pattern)
	case *ast.In:
		return es.membership(x.Value, "in", x.Collection)
	case *ast.NotIn:
		return es.membership(x.Value, "not in", x.Collection)
	case *ast.Not:
		return es.negation(x)
	case *ast.BoolExpr:
		return es.boolExpr(x)
	case *ast.Hash:
		s, err := es.hash(x, 0)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	case *ast.Plugin:
		s, err := es.plugin(x, 0)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	default:
		return "", fmt.Errorf("render: node %v has no inline form", n.Kind())
	}
}

func (es *RenderState) array(a *ast.Array) (string, error) {
	parts := make([]string, 0, len(a.Elems))
	for _, el := range a.Elems {
		s, err := es.inline(el)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func (es *RenderState) methodCall(mc *ast.MethodCall) (string, error) {
	args := make([]string, 0, len(mc.Args))
	for _, a := range mc.Args {
		s, err := es.inline(a)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	name := es.color(ast.KindMethodCall, NameColor, mc.Name)
	return name + "(" + strings.Join(args, ", ") + ")", nil
}

func (es *RenderState) binary(left ast.Node, op string, right ast.Node) (string, error) {
	l, err := es.inline(left)
	if err != nil {
		return "", err
	}
	r, err := es.inline(right)
	if err != nil {
		return "", err
	}
	return l + " " + es.color(ast.KindCompare, SepColor, op) + " " + r, nil
}

func (es *RenderState) membership(value ast.Node, kw string, coll ast.Node) (string, error) {
	v, err := es.inline(value)
	if err != nil {
		return "", err
	}
	c, err := es.inline(coll)
	if err != nil {
		return "", err
	}
	return v + " " + es.color(ast.KindIn, KeywordColor, kw) + " " + c, nil
}

// negation renders !x for primary operands and !(…) for compound
// expressions.
func (es *RenderState) negation(n *ast.Not) (string, error) {
	s, err := es.inline(n.Expr)
	if err != nil {
		return "", err
	}
	bang := es.color(ast.KindNot, SepColor, "!")
	if ast.IsExpression(n.Expr) {
		return bang + "(" + s + ")", nil
	}
	return bang + s, nil
}

// boolExpr parenthesizes an operand only when it is itself a boolean
// combination of strictly lower precedence, so equal tiers chain flat
// and or-chains under and regain their parentheses.
func (es *RenderState) boolExpr(be *ast.BoolExpr) (string, error) {
	l, err := es.boolOperand(be.Left, be.Op)
	if err != nil {
		return "", err
	}
	r, err := es.boolOperand(be.Right, be.Op)
	if err != nil {
		return "", err
	}
	return l + " " + es.color(ast.KindBoolExpr, KeywordColor, be.Op) + " " + r, nil
}

func (es *RenderState) boolOperand(n ast.Node, parentOp string) (string, error) {
	s, err := es.inline(n)
	if err != nil {
		return "", err
	}
	child, ok := ast.Unwrap(n).(*ast.BoolExpr)
	if !ok {
		return s, nil
	}
	if ast.Precedence(child.Op) < ast.Precedence(parentOp) {
		return "(" + s + ")", nil
	}
	return s, nil
}
