package tree

import (
	"strings"
	"testing"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/parse"
	"github.com/elastide/lsconf/render"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// astDiffOpts compares rebuilt ASTs against parsed ones: a rebuilt
// number has no source lexeme, only its canonical spelling, and
// rebuilt empty slices need not share nil-ness with parsed ones.
var astDiffOpts = cmp.Options{
	cmp.AllowUnexported(ast.String{}),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b *ast.Number) bool {
		return a.IsInt == b.IsInt && a.Source() == b.Source()
	}),
}

func parseDoc(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestFromNodeShapes(t *testing.T) {
	doc := parseDoc(t, `filter { grok { match => "x" } }`)
	v, err := FromNode(doc)
	require.NoError(t, err)
	d, err := Marshal(v)
	require.NoError(t, err)
	want := `{"config":[{"plugin_section":{"filter":[{"plugin":{"plugin_name":"grok","attributes":[{"match":{"ls_string":"\"x\""}}]}}]}}]}`
	require.Equal(t, want, string(d))
}

func TestFromNodeExpressionShapes(t *testing.T) {
	n, err := parse.Fragment(ast.KindCompare, []byte(`[status] >= 400`))
	require.NoError(t, err)
	v, err := FromNode(n)
	require.NoError(t, err)
	d, err := Marshal(v)
	require.NoError(t, err)
	want := `{"compare_expression":{"left":{"selector_node":"[status]"},"operator":">=","right":{"number":400}}}`
	require.Equal(t, want, string(d))

	n, err = parse.Fragment(ast.KindNotIn, []byte(`"x" not in [tags]`))
	require.NoError(t, err)
	v, err = FromNode(n)
	require.NoError(t, err)
	d, err = Marshal(v)
	require.NoError(t, err)
	want = `{"not_in_expression":{"value":{"ls_string":"\"x\""},"operator":"not in","collection":{"selector_node":"[tags]"}}}`
	require.Equal(t, want, string(d))

	n, err = parse.Fragment(ast.KindNot, []byte(`![f]`))
	require.NoError(t, err)
	v, err = FromNode(n)
	require.NoError(t, err)
	d, err = Marshal(v)
	require.NoError(t, err)
	want = `{"negative_expression":{"operator":"!","expression":{"selector_node":"[f]"}}}`
	require.Equal(t, want, string(d))
}

func TestHashKeyOrder(t *testing.T) {
	n, err := parse.Fragment(ast.KindHash, []byte(`{ zz => 1 aa => 2 "mm" => 3 }`))
	require.NoError(t, err)
	v, err := FromNode(n)
	require.NoError(t, err)
	d, err := Marshal(v)
	require.NoError(t, err)
	// insertion order, not sorted
	want := `{"hash":{"zz":{"number":1},"aa":{"number":2},"\"mm\"":{"number":3}}}`
	require.Equal(t, want, string(d))
}

func TestTreeRoundTrip(t *testing.T) {
	srcs := []string{
		`input { stdin {} }`,
		`filter { grok { match => { "message" => "%{COMBINEDAPACHELOG}" } } }`,
		`filter { if [status] >= 400 and [status] < 500 { drop {} } else if [status] >= 500 { mutate { add_tag => ["server_error"] } } else { drop {} } }`,
		`output { if "err" in [tags] { stdout { codec => json { charset => 'UTF-8' } } } }`,
		`filter { if [path] =~ /\/var\/log\/.*/ or ![ok] { drop {} } }`,
	}
	for _, src := range srcs {
		doc := parseDoc(t, src)
		v, err := FromNode(doc)
		require.NoError(t, err, src)

		back, err := ToNode(v)
		require.NoError(t, err, src)
		if d := cmp.Diff(doc, back, astDiffOpts); d != "" {
			t.Errorf("tree round trip of %q changed the AST (-orig +back):\n%s", src, d)
		}

		// and through the JSON codec
		data, err := Marshal(v)
		require.NoError(t, err, src)
		v2, err := Unmarshal(data)
		require.NoError(t, err, src)
		back2, err := ToNode(v2)
		require.NoError(t, err, src)
		if d := cmp.Diff(doc, back2, astDiffOpts); d != "" {
			t.Errorf("json round trip of %q changed the AST (-orig +back):\n%s", src, d)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := parseDoc(t, `filter { mutate { add_field => { "a" => 1 bb => [true, 2.5] } } }`)
	v, err := FromNode(doc)
	require.NoError(t, err)
	data, err := MarshalYAML(v)
	require.NoError(t, err)
	v2, err := UnmarshalYAML(data)
	require.NoError(t, err)
	back, err := ToNode(v2)
	require.NoError(t, err)
	if d := cmp.Diff(doc, back, astDiffOpts); d != "" {
		t.Errorf("yaml round trip changed the AST (-orig +back):\n%s", d)
	}
}

func TestNumberIdentity(t *testing.T) {
	n, err := parse.Fragment(ast.KindArray, []byte(`[1, 2.5, -3]`))
	require.NoError(t, err)
	v, err := FromNode(n)
	require.NoError(t, err)
	d, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `{"array":[{"number":1},{"number":2.5},{"number":-3}]}`, string(d))

	back, err := ToNode(v)
	require.NoError(t, err)
	arr := back.(*ast.Array)
	require.True(t, arr.Elems[0].(*ast.Number).IsInt)
	require.False(t, arr.Elems[1].(*ast.Number).IsInt)
}

func TestIntegralFloatKind(t *testing.T) {
	n, err := parse.Fragment(ast.KindArray, []byte(`[2.0]`))
	require.NoError(t, err)
	v, err := FromNode(n)
	require.NoError(t, err)

	d, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, `{"array":[{"number":2.0}]}`, string(d))

	back, err := Unmarshal(d)
	require.NoError(t, err)
	bn, err := ToNode(back)
	require.NoError(t, err)
	num := bn.(*ast.Array).Elems[0].(*ast.Number)
	require.False(t, num.IsInt)
	require.Equal(t, "2.0", num.Source())

	yd, err := MarshalYAML(v)
	require.NoError(t, err)
	yv, err := UnmarshalYAML(yd)
	require.NoError(t, err)
	yn, err := ToNode(yv)
	require.NoError(t, err)
	require.False(t, yn.(*ast.Array).Elems[0].(*ast.Number).IsInt)
}

func TestUntaggedScalars(t *testing.T) {
	n, err := ToNode("plain")
	require.NoError(t, err)
	require.Equal(t, "plain", n.(*ast.Bareword).Word)

	n, err = ToNode(int64(7))
	require.NoError(t, err)
	require.EqualValues(t, 7, n.(*ast.Number).Int)

	n, err = ToNode(true)
	require.NoError(t, err)
	require.True(t, n.(*ast.Boolean).Value)

	n, err = ToNode([]Value{int64(1), "ab"})
	require.NoError(t, err)
	require.Len(t, n.(*ast.Array).Elems, 2)

	// untagged single-key object is an attribute
	n, err = ToNode(Obj("path", Obj(TagString, `"/var/log"`)))
	require.NoError(t, err)
	attr := n.(*ast.Attribute)
	require.Equal(t, "path", attr.Name.(*ast.Bareword).Word)
	require.Equal(t, "/var/log", attr.Value.(*ast.String).Value())
}

func TestShapeErrors(t *testing.T) {
	bad := []Value{
		// two keys on a tagged node
		func() *Object {
			o := NewObject()
			o.Set(TagString, `"x"`)
			o.Set(TagNumber, int64(1))
			return o
		}(),
		// wrong payload types
		Obj(TagBoolean, "yes"),
		Obj(TagNumber, "12"),
		Obj(TagPlugin, Obj("plugin_name", "grok")),
		Obj(TagSection, Obj("router", []Value{})),
		Obj(TagCompare, func() *Object {
			o := NewObject()
			o.Set("left", Obj(TagNumber, int64(1)))
			o.Set("operator", "===")
			o.Set("right", Obj(TagNumber, int64(2)))
			return o
		}()),
		// branch without a leading if
		Obj(TagBranch, []Value{Obj(TagElse, []Value{})}),
		// unknown key inside a known payload
		Obj(TagNegative, func() *Object {
			o := NewObject()
			o.Set("operator", "!")
			o.Set("expression", Obj(TagSelector, "[a]"))
			o.Set("extra", true)
			return o
		}()),
		nil,
	}
	for i, v := range bad {
		_, err := ToNode(v)
		if err == nil {
			t.Errorf("case %d: expected ShapeError", i)
			continue
		}
		var se *ShapeError
		require.ErrorAs(t, err, &se, "case %d", i)
	}
}

func TestBranchArmOrder(t *testing.T) {
	ifArm := Obj(TagIf, func() *Object {
		o := NewObject()
		o.Set("expr", Obj(TagSelector, "[a]"))
		o.Set("body", []Value{})
		return o
	}())
	elseArm := Obj(TagElse, []Value{})

	// else before if
	_, err := ToNode(Obj(TagBranch, []Value{elseArm, ifArm}))
	var se *ShapeError
	require.ErrorAs(t, err, &se)

	// well-ordered chain works
	n, err := ToNode(Obj(TagBranch, []Value{ifArm, elseArm}))
	require.NoError(t, err)
	require.NotNil(t, n.(*ast.Branch).Else)
}

func TestTreeEqualityIgnoresLayout(t *testing.T) {
	a := parseDoc(t, "input{stdin{}}\noutput{stdout{}}")
	b := parseDoc(t, "input {\n  # reader\n  stdin {\n  }\n}\n\noutput { stdout {} }")
	va, err := FromNode(a)
	require.NoError(t, err)
	vb, err := FromNode(b)
	require.NoError(t, err)
	da, err := Marshal(va)
	require.NoError(t, err)
	db, err := Marshal(vb)
	require.NoError(t, err)
	require.Equal(t, string(da), string(db))
}

func TestRebuiltTreeRendersSameText(t *testing.T) {
	src := `filter {
  if [status] >= 400 {
    drop {
    }
  }
}
`
	doc := parseDoc(t, src)
	v, err := FromNode(doc)
	require.NoError(t, err)
	back, err := ToNode(v)
	require.NoError(t, err)
	out, err := render.String(back)
	require.NoError(t, err)
	if !strings.Contains(out, "if [status] >= 400 {") {
		t.Errorf("rebuilt render lost the guard:\n%s", out)
	}
	require.Equal(t, src, out)
}
