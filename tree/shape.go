package tree

import (
	"github.com/elastide/lsconf/ast"
)

func toNodes(list []Value) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(list))
	for _, v := range list {
		n, err := ToNode(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// bodyNodes decodes a section or arm body, whose children can only be
// plugins and branches.
func bodyNodes(tag string, list []Value) ([]ast.Node, error) {
	out := make([]ast.Node, 0, len(list))
	for _, v := range list {
		n, err := ToNode(v)
		if err != nil {
			return nil, err
		}
		switch n.(type) {
		case *ast.Plugin, *ast.Branch:
		default:
			return nil, shapeErr(tag, "body children must be plugins or branches, got %v", n.Kind())
		}
		out = append(out, n)
	}
	return out, nil
}

// objectPayload checks that payload is an object with exactly the
// given keys.
func objectPayload(tag string, payload Value, keys ...string) (*Object, error) {
	o, ok := payload.(*Object)
	if !ok {
		return nil, shapeErr(tag, "payload must be an object, got %T", payload)
	}
	for _, k := range keys {
		if _, ok := o.Get(k); !ok {
			return nil, shapeErr(tag, "missing key %q", k)
		}
	}
	if o.Len() != len(keys) {
		for _, k := range o.Keys() {
			if !contains(keys, k) {
				return nil, shapeErr(tag, "unexpected key %q", k)
			}
		}
	}
	return o, nil
}

func contains(keys []string, k string) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}

func stringPayload(tag string, payload Value) (string, error) {
	s, ok := payload.(string)
	if !ok {
		return "", shapeErr(tag, "payload must be a string, got %T", payload)
	}
	return s, nil
}

func listPayload(tag string, payload Value) ([]Value, error) {
	switch x := payload.(type) {
	case []Value:
		return x, nil
	case nil:
		return nil, nil
	default:
		return nil, shapeErr(tag, "payload must be a list, got %T", payload)
	}
}

func operatorField(tag string, o *Object) (string, error) {
	v, _ := o.Get("operator")
	op, ok := v.(string)
	if !ok {
		return "", shapeErr(tag, "operator must be a string, got %T", v)
	}
	return op, nil
}

// wrapPrimary restores the RValue wrapper the grammar puts around
// primary operands of expressions; compound expressions stay bare.
func wrapPrimary(n ast.Node) ast.Node {
	if ast.IsExpression(n) {
		return n
	}
	if _, ok := n.(*ast.RValue); ok {
		return n
	}
	return &ast.RValue{Value: n}
}

// parseNameKey rebuilds an attribute name node from its key string: a
// leading quote means a quoted string, anything else must fit the
// loose name grammar.
func parseNameKey(s string) (ast.Node, error) {
	if s == "" {
		return nil, shapeErr("", "empty attribute name")
	}
	if s[0] == '"' || s[0] == '\'' {
		n, err := ast.NewString(s)
		if err != nil {
			return nil, shapeErr("", "bad attribute name %q: %v", s, err)
		}
		return n, nil
	}
	if !ast.IsName(s) {
		return nil, shapeErr("", "bad attribute name %q", s)
	}
	return &ast.Bareword{Word: s}, nil
}

// parseHashKey rebuilds a hash key node: quoted string, number, or
// strict bareword.
func parseHashKey(s string) (ast.Node, error) {
	if s == "" {
		return nil, shapeErr(TagHash, "empty hash key")
	}
	if s[0] == '"' || s[0] == '\'' {
		n, err := ast.NewString(s)
		if err != nil {
			return nil, shapeErr(TagHash, "bad hash key %q: %v", s, err)
		}
		return n, nil
	}
	if s[0] == '-' || (s[0] >= '0' && s[0] <= '9') {
		n, err := ast.ParseNumber(s)
		if err != nil {
			return nil, shapeErr(TagHash, "bad hash key %q: %v", s, err)
		}
		return n, nil
	}
	if !ast.IsBareword(s) {
		return nil, shapeErr(TagHash, "bad hash key %q", s)
	}
	return &ast.Bareword{Word: s}, nil
}
