package render

import (
	"testing"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func renderSource(t *testing.T, src string) string {
	t.Helper()
	doc, err := parse.Parse([]byte(src))
	require.NoError(t, err)
	out, err := String(doc)
	require.NoError(t, err)
	return out
}

func TestRenderLayout(t *testing.T) {
	got := renderSource(t, `input{stdin{}}output{stdout{codec=>rubydebug{}}}`)
	want := `input {
  stdin {
  }
}

output {
  stdout {
    codec => rubydebug {
      }
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", d)
	}
}

func TestRenderHashValue(t *testing.T) {
	got := renderSource(t, `filter { mutate { add_field => { "a" => 1 "b" => two } } }`)
	want := `filter {
  mutate {
    add_field => {
      "a" => 1
      "b" => two
    }
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("hash layout mismatch (-want +got):\n%s", d)
	}
}

func TestRenderBranchLayout(t *testing.T) {
	got := renderSource(t, `filter { if [a] { drop {} } else if [b] { mutate {} } else { drop {} } }`)
	want := `filter {
  if [a] {
    drop {
    }
  } else if [b] {
    mutate {
    }
  } else {
    drop {
    }
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("branch layout mismatch (-want +got):\n%s", d)
	}
}

func TestRenderSectionSpacing(t *testing.T) {
	got := renderSource(t, `filter { grok {} if [a] { drop {} } mutate {} }`)
	want := `filter {
  grok {
  }

  if [a] {
    drop {
    }
  }

  mutate {
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("spacing mismatch (-want +got):\n%s", d)
	}
}

type exprRenderTest struct {
	in   string
	want string
}

func TestRenderExpressions(t *testing.T) {
	ets := []exprRenderTest{
		// parens regained from precedence alone
		{in: `([a] or [b]) and [c]`, want: `([a] or [b]) and [c]`},
		{in: `[a] and [b] and [c]`, want: `[a] and [b] and [c]`},
		{in: `[a] and ([b] or [c])`, want: `[a] and ([b] or [c])`},
		{in: `[a] or [b] and [c]`, want: `[a] or [b] and [c]`},
		{in: `[a] xor [b] nand [c]`, want: `[a] xor [b] nand [c]`},
		{in: `![f] and [g]`, want: `![f] and [g]`},
		{in: `!([s] >= 400) or [t]`, want: `!([s] >= 400) or [t]`},
		{in: `"a" in [tags] and "b" not in [tags]`, want: `"a" in [tags] and "b" not in [tags]`},
		{in: `[path] =~ /\/var\/log\/.*/ or [path] !~ "tmp"`, want: `[path] =~ /\/var\/log\/.*/ or [path] !~ "tmp"`},
		{in: `[n] <= 3.5 or len([tags]) > 0`, want: `[n] <= 3.5 or len([tags]) > 0`},
	}
	for _, et := range ets {
		n, err := parse.Fragment(ast.KindBoolExpr, []byte(et.in))
		require.NoError(t, err, et.in)
		got, err := String(n)
		require.NoError(t, err, et.in)
		if got != et.want {
			t.Errorf("render(%q) = %q, want %q", et.in, got, et.want)
		}
	}
}

func TestRenderNegation(t *testing.T) {
	n, err := parse.Fragment(ast.KindNot, []byte(`![f]`))
	require.NoError(t, err)
	got, err := String(n)
	require.NoError(t, err)
	require.Equal(t, `![f]`, got)

	n, err = parse.Fragment(ast.KindNot, []byte(`!( [s] >= 400 )`))
	require.NoError(t, err)
	got, err = String(n)
	require.NoError(t, err)
	require.Equal(t, `!([s] >= 400)`, got)
}

func TestRenderLiteralFidelity(t *testing.T) {
	got := renderSource(t, `filter {
  mutate {
    a => 'single'
    b => "double"
    c => 1.50
    d => -7
    e => [true, word2, "s"]
  }
}`)
	want := `filter {
  mutate {
    a => 'single'
    b => "double"
    c => 1.50
    d => -7
    e => [true, word2, "s"]
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("fidelity mismatch (-want +got):\n%s", d)
	}
}

func TestRenderIdempotent(t *testing.T) {
	srcs := []string{
		`input{stdin{}}`,
		`filter { if ([a] or [b]) and [c] { drop {} } else { mutate { x => { kk => [1, 2] } } } }`,
		`output { if "a" not in [tags] { stdout { codec => json {} } } }`,
	}
	for _, src := range srcs {
		once := renderSource(t, src)
		again := renderSource(t, once)
		if d := cmp.Diff(once, again); d != "" {
			t.Errorf("render of %q not idempotent (-once +again):\n%s", src, d)
		}
	}
}

func TestRenderIndentOption(t *testing.T) {
	doc, err := parse.Parse([]byte(`input { stdin { add_field => ok } }`))
	require.NoError(t, err)
	out, err := String(doc, Indent(4))
	require.NoError(t, err)
	want := `input {
    stdin {
        add_field => ok
    }
}
`
	require.Equal(t, want, out)
}
