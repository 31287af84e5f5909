package tree

import (
	"fmt"

	"github.com/elastide/lsconf/ast"
)

// Node tags of the canonical form.
const (
	TagString     = "ls_string"
	TagBareword   = "ls_bare_word"
	TagNumber     = "number"
	TagBoolean    = "boolean"
	TagRegexp     = "regexp"
	TagSelector   = "selector_node"
	TagArray      = "array"
	TagHash       = "hash"
	TagPlugin     = "plugin"
	TagCompare    = "compare_expression"
	TagRegexMatch = "regex_expression"
	TagIn         = "in_expression"
	TagNotIn      = "not_in_expression"
	TagNegative   = "negative_expression"
	TagBoolExpr   = "boolean_expression"
	TagMethodCall = "method_call"
	TagIf         = "if_condition"
	TagElseIf     = "else_if_condition"
	TagElse       = "else_condition"
	TagBranch     = "branch"
	TagSection    = "plugin_section"
	TagConfig     = "config"
)

// FromNode maps an AST node to its canonical tagged value. String
// nodes carry their quoted lexeme, numbers their int/float identity,
// and RValue wrappers are transparent. The error case is an AST built
// outside this module's node set.
func FromNode(n ast.Node) (Value, error) {
	switch x := n.(type) {
	case *ast.String:
		return Obj(TagString, x.Lexeme), nil
	case *ast.Bareword:
		return Obj(TagBareword, x.Word), nil
	case *ast.Number:
		if x.IsInt {
			return Obj(TagNumber, x.Int), nil
		}
		return Obj(TagNumber, x.Float), nil
	case *ast.Boolean:
		return Obj(TagBoolean, x.Value), nil
	case *ast.Regexp:
		return Obj(TagRegexp, x.Body), nil
	case *ast.Selector:
		return Obj(TagSelector, x.Raw), nil
	case *ast.Array:
		elems, err := fromNodes(x.Elems)
		if err != nil {
			return nil, err
		}
		return Obj(TagArray, elems), nil
	case *ast.Hash:
		h := NewObject()
		for _, entry := range x.Entries {
			key, err := keyString(entry.Key)
			if err != nil {
				return nil, err
			}
			v, err := FromNode(entry.Val)
			if err != nil {
				return nil, err
			}
			h.Set(key, v)
		}
		return Obj(TagHash, h), nil
	case *ast.HashEntry:
		return fromPair(x.Key, x.Val)
	case *ast.Attribute:
		return fromPair(x.Name, x.Value)
	case *ast.Plugin:
		attrs := make([]Value, 0, len(x.Attributes))
		for _, attr := range x.Attributes {
			v, err := fromPair(attr.Name, attr.Value)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, v)
		}
		p := NewObject()
		p.Set("plugin_name", x.Name)
		p.Set("attributes", attrs)
		return Obj(TagPlugin, p), nil
	case *ast.RValue:
		return FromNode(x.Value)
	case *ast.Compare:
		return fromBinary(TagCompare, x.Left, x.Op, "right", x.Right)
	case *ast.RegexMatch:
		return fromBinary(TagRegexMatch, x.Left, x.Op, "pattern", x.Pattern)
	case *ast.In:
		return fromMembership(TagIn, x.Value, "in", x.Collection)
	case *ast.NotIn:
		return fromMembership(TagNotIn, x.Value, "not in", x.Collection)
	case *ast.Not:
		expr, err := FromNode(x.Expr)
		if err != nil {
			return nil, err
		}
		o := NewObject()
		o.Set("operator", "!")
		o.Set("expression", expr)
		return Obj(TagNegative, o), nil
	case *ast.BoolExpr:
		left, err := FromNode(x.Left)
		if err != nil {
			return nil, err
		}
		right, err := FromNode(x.Right)
		if err != nil {
			return nil, err
		}
		o := NewObject()
		o.Set("left", left)
		o.Set("operator", x.Op)
		o.Set("right", right)
		return Obj(TagBoolExpr, o), nil
	case *ast.MethodCall:
		args, err := fromNodes(x.Args)
		if err != nil {
			return nil, err
		}
		o := NewObject()
		o.Set("method", x.Name)
		o.Set("args", args)
		return Obj(TagMethodCall, o), nil
	case *ast.If:
		return fromArm(TagIf, x.Cond, x.Body)
	case *ast.ElseIf:
		return fromArm(TagElseIf, x.Cond, x.Body)
	case *ast.Else:
		body, err := fromNodes(x.Body)
		if err != nil {
			return nil, err
		}
		return Obj(TagElse, body), nil
	case *ast.Branch:
		arms, err := fromNodes(x.Arms())
		if err != nil {
			return nil, err
		}
		return Obj(TagBranch, arms), nil
	case *ast.Section:
		body, err := fromNodes(x.Body)
		if err != nil {
			return nil, err
		}
		return Obj(TagSection, Obj(x.Type, body)), nil
	case *ast.Document:
		secs := make([]Value, 0, len(x.Sections))
		for _, sec := range x.Sections {
			v, err := FromNode(sec)
			if err != nil {
				return nil, err
			}
			secs = append(secs, v)
		}
		return Obj(TagConfig, secs), nil
	default:
		return nil, fmt.Errorf("tree: unmappable node %v", n.Kind())
	}
}

func fromNodes(nodes []ast.Node) ([]Value, error) {
	out := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := FromNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// fromPair maps an attribute or hash entry to a bare single-key
// object, the name rendered as its lexeme.
func fromPair(name, value ast.Node) (Value, error) {
	key, err := keyString(name)
	if err != nil {
		return nil, err
	}
	v, err := FromNode(value)
	if err != nil {
		return nil, err
	}
	return Obj(key, v), nil
}

// keyString reports the lexeme used as an attribute or hash key, the
// quotes of a quoted key included.
func keyString(n ast.Node) (string, error) {
	switch x := n.(type) {
	case *ast.String:
		return x.Lexeme, nil
	case *ast.Bareword:
		return x.Word, nil
	case *ast.Number:
		return x.Source(), nil
	default:
		return "", fmt.Errorf("tree: node %v cannot be a key", n.Kind())
	}
}

func fromBinary(tag string, left ast.Node, op, rightKey string, right ast.Node) (Value, error) {
	l, err := FromNode(left)
	if err != nil {
		return nil, err
	}
	r, err := FromNode(right)
	if err != nil {
		return nil, err
	}
	o := NewObject()
	o.Set("left", l)
	o.Set("operator", op)
	o.Set(rightKey, r)
	return Obj(tag, o), nil
}

func fromMembership(tag string, value ast.Node, op string, coll ast.Node) (Value, error) {
	v, err := FromNode(value)
	if err != nil {
		return nil, err
	}
	c, err := FromNode(coll)
	if err != nil {
		return nil, err
	}
	o := NewObject()
	o.Set("value", v)
	o.Set("operator", op)
	o.Set("collection", c)
	return Obj(tag, o), nil
}

func fromArm(tag string, cond ast.Node, body []ast.Node) (Value, error) {
	expr, err := FromNode(cond)
	if err != nil {
		return nil, err
	}
	b, err := fromNodes(body)
	if err != nil {
		return nil, err
	}
	o := NewObject()
	o.Set("expr", expr)
	o.Set("body", b)
	return Obj(tag, o), nil
}
