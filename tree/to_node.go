package tree

import (
	"encoding/json"

	"github.com/elastide/lsconf/ast"
)

// ToNode maps a canonical tagged value back to an AST node. Plain
// scalars are accepted where the intent is unambiguous: a bare string
// becomes a Bareword, a bare number a Number, a bare bool a Boolean,
// and a bare list an Array. A single-key object whose key is not a tag
// is an Attribute. Anything else that does not fit a node shape is a
// *ShapeError.
func ToNode(v Value) (ast.Node, error) {
	switch x := v.(type) {
	case *Object:
		return objectNode(x)
	case string:
		return &ast.Bareword{Word: x}, nil
	case bool:
		return &ast.Boolean{Value: x}, nil
	case int:
		return ast.NumberFromInt(int64(x)), nil
	case int64:
		return ast.NumberFromInt(x), nil
	case float64:
		return ast.NumberFromFloat(x), nil
	case json.Number:
		n, err := numberValue(x)
		if err != nil {
			return nil, shapeErr(TagNumber, "%v", err)
		}
		return ToNode(n)
	case []Value:
		elems, err := toNodes(x)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elems: elems}, nil
	case nil:
		return nil, shapeErr("", "null has no node form")
	default:
		return nil, shapeErr("", "value %T has no node form", v)
	}
}

func objectNode(o *Object) (ast.Node, error) {
	tag, payload, ok := o.Sole()
	if !ok {
		return nil, shapeErr("", "tagged node must have exactly one key, got %d", o.Len())
	}
	switch tag {
	case TagString:
		lex, err := stringPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		s, serr := ast.NewString(lex)
		if serr != nil {
			return nil, shapeErr(tag, "%v", serr)
		}
		return s, nil
	case TagBareword:
		w, err := stringPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		return &ast.Bareword{Word: w}, nil
	case TagNumber:
		switch n := payload.(type) {
		case int:
			return ast.NumberFromInt(int64(n)), nil
		case int64:
			return ast.NumberFromInt(n), nil
		case float64:
			return ast.NumberFromFloat(n), nil
		case json.Number:
			v, err := numberValue(n)
			if err != nil {
				return nil, shapeErr(tag, "%v", err)
			}
			return ToNode(Obj(TagNumber, v))
		}
		return nil, shapeErr(tag, "payload must be a number, got %T", payload)
	case TagBoolean:
		b, ok := payload.(bool)
		if !ok {
			return nil, shapeErr(tag, "payload must be a bool, got %T", payload)
		}
		return &ast.Boolean{Value: b}, nil
	case TagRegexp:
		body, err := stringPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		return &ast.Regexp{Body: body}, nil
	case TagSelector:
		raw, err := stringPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		return &ast.Selector{Raw: raw}, nil
	case TagArray:
		list, err := listPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		elems, err := toNodes(list)
		if err != nil {
			return nil, err
		}
		return &ast.Array{Elems: elems}, nil
	case TagHash:
		return hashNode(payload)
	case TagPlugin:
		return pluginNode(payload)
	case TagCompare:
		return binaryNode(tag, payload, "right")
	case TagRegexMatch:
		return binaryNode(tag, payload, "pattern")
	case TagIn, TagNotIn:
		return membershipNode(tag, payload)
	case TagNegative:
		return negativeNode(payload)
	case TagBoolExpr:
		return boolExprNode(payload)
	case TagMethodCall:
		return methodCallNode(payload)
	case TagIf, TagElseIf:
		return armNode(tag, payload)
	case TagElse:
		list, err := listPayload(tag, payload)
		if err != nil {
			return nil, err
		}
		body, err := bodyNodes(tag, list)
		if err != nil {
			return nil, err
		}
		return &ast.Else{Body: body}, nil
	case TagBranch:
		return branchNode(payload)
	case TagSection:
		return sectionNode(payload)
	case TagConfig:
		return configNode(payload)
	default:
		// Not a tag: a bare single-key object is an attribute.
		return attributeNode(tag, payload)
	}
}

func attributeNode(name string, payload Value) (ast.Node, error) {
	nameNode, err := parseNameKey(name)
	if err != nil {
		return nil, err
	}
	v, err := ToNode(payload)
	if err != nil {
		return nil, err
	}
	return &ast.Attribute{Name: nameNode, Value: v}, nil
}

func hashNode(payload Value) (ast.Node, error) {
	o, ok := payload.(*Object)
	if !ok {
		return nil, shapeErr(TagHash, "payload must be an object, got %T", payload)
	}
	h := &ast.Hash{}
	for _, k := range o.Keys() {
		key, err := parseHashKey(k)
		if err != nil {
			return nil, err
		}
		pv, _ := o.Get(k)
		v, err := ToNode(pv)
		if err != nil {
			return nil, err
		}
		h.Entries = append(h.Entries, &ast.HashEntry{Key: key, Val: v})
	}
	return h, nil
}

func pluginNode(payload Value) (ast.Node, error) {
	o, err := objectPayload(TagPlugin, payload, "plugin_name", "attributes")
	if err != nil {
		return nil, err
	}
	nameV, _ := o.Get("plugin_name")
	name, ok := nameV.(string)
	if !ok {
		return nil, shapeErr(TagPlugin, "plugin_name must be a string, got %T", nameV)
	}
	attrsV, _ := o.Get("attributes")
	list, err := listPayload(TagPlugin, attrsV)
	if err != nil {
		return nil, err
	}
	p := &ast.Plugin{Name: name}
	for _, av := range list {
		ao, ok := av.(*Object)
		if !ok {
			return nil, shapeErr(TagPlugin, "attribute must be an object, got %T", av)
		}
		key, pv, ok := ao.Sole()
		if !ok {
			return nil, shapeErr(TagPlugin, "attribute must have exactly one name")
		}
		an, err := attributeNode(key, pv)
		if err != nil {
			return nil, err
		}
		p.Attributes = append(p.Attributes, an.(*ast.Attribute))
	}
	return p, nil
}

func binaryNode(tag string, payload Value, rightKey string) (ast.Node, error) {
	o, err := objectPayload(tag, payload, "left", "operator", rightKey)
	if err != nil {
		return nil, err
	}
	op, err := operatorField(tag, o)
	if err != nil {
		return nil, err
	}
	leftV, _ := o.Get("left")
	left, err := ToNode(leftV)
	if err != nil {
		return nil, err
	}
	rightV, _ := o.Get(rightKey)
	right, err := ToNode(rightV)
	if err != nil {
		return nil, err
	}
	if tag == TagCompare {
		switch op {
		case "==", "!=", "<=", ">=", "<", ">":
		default:
			return nil, shapeErr(tag, "unknown operator %q", op)
		}
		return &ast.Compare{Left: wrapPrimary(left), Op: op, Right: wrapPrimary(right)}, nil
	}
	switch op {
	case "=~", "!~":
	default:
		return nil, shapeErr(tag, "unknown operator %q", op)
	}
	switch right.(type) {
	case *ast.String, *ast.Regexp:
	default:
		return nil, shapeErr(tag, "pattern must be a string or regexp, got %v", right.Kind())
	}
	return &ast.RegexMatch{Left: wrapPrimary(left), Op: op, Pattern: right}, nil
}

func membershipNode(tag string, payload Value) (ast.Node, error) {
	o, err := objectPayload(tag, payload, "value", "operator", "collection")
	if err != nil {
		return nil, err
	}
	valueV, _ := o.Get("value")
	value, err := ToNode(valueV)
	if err != nil {
		return nil, err
	}
	collV, _ := o.Get("collection")
	coll, err := ToNode(collV)
	if err != nil {
		return nil, err
	}
	if tag == TagIn {
		return &ast.In{Value: wrapPrimary(value), Collection: wrapPrimary(coll)}, nil
	}
	return &ast.NotIn{Value: wrapPrimary(value), Collection: wrapPrimary(coll)}, nil
}

func negativeNode(payload Value) (ast.Node, error) {
	o, err := objectPayload(TagNegative, payload, "operator", "expression")
	if err != nil {
		return nil, err
	}
	op, err := operatorField(TagNegative, o)
	if err != nil {
		return nil, err
	}
	if op != "!" {
		return nil, shapeErr(TagNegative, "unknown operator %q", op)
	}
	exprV, _ := o.Get("expression")
	expr, err := ToNode(exprV)
	if err != nil {
		return nil, err
	}
	return &ast.Not{Expr: expr}, nil
}

func boolExprNode(payload Value) (ast.Node, error) {
	o, err := objectPayload(TagBoolExpr, payload, "left", "operator", "right")
	if err != nil {
		return nil, err
	}
	op, err := operatorField(TagBoolExpr, o)
	if err != nil {
		return nil, err
	}
	switch op {
	case "and", "or", "xor", "nand":
	default:
		return nil, shapeErr(TagBoolExpr, "unknown operator %q", op)
	}
	leftV, _ := o.Get("left")
	left, err := ToNode(leftV)
	if err != nil {
		return nil, err
	}
	rightV, _ := o.Get("right")
	right, err := ToNode(rightV)
	if err != nil {
		return nil, err
	}
	return &ast.BoolExpr{Left: wrapPrimary(left), Op: op, Right: wrapPrimary(right)}, nil
}

func methodCallNode(payload Value) (ast.Node, error) {
	o, err := objectPayload(TagMethodCall, payload, "method", "args")
	if err != nil {
		return nil, err
	}
	nameV, _ := o.Get("method")
	name, ok := nameV.(string)
	if !ok {
		return nil, shapeErr(TagMethodCall, "method must be a string, got %T", nameV)
	}
	argsV, _ := o.Get("args")
	list, err := listPayload(TagMethodCall, argsV)
	if err != nil {
		return nil, err
	}
	args, err := toNodes(list)
	if err != nil {
		return nil, err
	}
	for i := range args {
		args[i] = wrapPrimary(args[i])
	}
	return &ast.MethodCall{Name: name, Args: args}, nil
}

func armNode(tag string, payload Value) (ast.Node, error) {
	o, err := objectPayload(tag, payload, "expr", "body")
	if err != nil {
		return nil, err
	}
	exprV, _ := o.Get("expr")
	expr, err := ToNode(exprV)
	if err != nil {
		return nil, err
	}
	bodyV, _ := o.Get("body")
	list, err := listPayload(tag, bodyV)
	if err != nil {
		return nil, err
	}
	body, err := bodyNodes(tag, list)
	if err != nil {
		return nil, err
	}
	if tag == TagIf {
		return &ast.If{Cond: wrapPrimary(expr), Body: body}, nil
	}
	return &ast.ElseIf{Cond: wrapPrimary(expr), Body: body}, nil
}

func branchNode(payload Value) (ast.Node, error) {
	list, err := listPayload(TagBranch, payload)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, shapeErr(TagBranch, "branch must begin with an if condition")
	}
	var if_ *ast.If
	var elseIfs []*ast.ElseIf
	var else_ *ast.Else
	for i, av := range list {
		arm, err := ToNode(av)
		if err != nil {
			return nil, err
		}
		switch a := arm.(type) {
		case *ast.If:
			if i != 0 {
				return nil, shapeErr(TagBranch, "if condition must come first")
			}
			if_ = a
		case *ast.ElseIf:
			if if_ == nil {
				return nil, shapeErr(TagBranch, "branch must begin with an if condition")
			}
			if else_ != nil {
				return nil, shapeErr(TagBranch, "else condition must come last")
			}
			elseIfs = append(elseIfs, a)
		case *ast.Else:
			if if_ == nil {
				return nil, shapeErr(TagBranch, "branch must begin with an if condition")
			}
			if else_ != nil {
				return nil, shapeErr(TagBranch, "branch has more than one else condition")
			}
			else_ = a
		default:
			return nil, shapeErr(TagBranch, "unexpected %v arm", arm.Kind())
		}
	}
	br, berr := ast.NewBranch(if_, elseIfs, else_)
	if berr != nil {
		return nil, shapeErr(TagBranch, "%v", berr)
	}
	return br, nil
}

func sectionNode(payload Value) (ast.Node, error) {
	o, ok := payload.(*Object)
	if !ok {
		return nil, shapeErr(TagSection, "payload must be an object, got %T", payload)
	}
	typ, bodyV, ok := o.Sole()
	if !ok {
		return nil, shapeErr(TagSection, "section must have exactly one type key")
	}
	if !ast.IsSectionType(typ) {
		return nil, shapeErr(TagSection, "unknown section type %q", typ)
	}
	list, err := listPayload(TagSection, bodyV)
	if err != nil {
		return nil, err
	}
	body, err := bodyNodes(TagSection, list)
	if err != nil {
		return nil, err
	}
	return &ast.Section{Type: typ, Body: body}, nil
}

func configNode(payload Value) (ast.Node, error) {
	list, err := listPayload(TagConfig, payload)
	if err != nil {
		return nil, err
	}
	doc := &ast.Document{}
	for _, sv := range list {
		n, err := ToNode(sv)
		if err != nil {
			return nil, err
		}
		sec, ok := n.(*ast.Section)
		if !ok {
			return nil, shapeErr(TagConfig, "config children must be sections, got %v", n.Kind())
		}
		doc.Sections = append(doc.Sections, sec)
	}
	if len(doc.Sections) == 0 {
		return nil, shapeErr(TagConfig, "config must have at least one section")
	}
	return doc, nil
}
