package lsconf

import (
	"errors"
	"testing"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const statusConfig = `input {
  file {
    path => "/var/log/nginx/access.log"
    start_position => "beginning"
  }
}

filter {
  grok {
    match => { "message" => "%{COMBINEDAPACHELOG}" }
  }

  if [status] >= 500 {
    mutate {
      add_tag => ["server_error"]
    }
  } else if [status] >= 400 and [status] < 500 {
    mutate {
      add_tag => ["client_error"]
    }
  } else {
    drop {
    }
  }
}

output {
  if "server_error" in [tags] {
    stdout {
      codec => rubydebug {
        }
    }
  }
}
`

func TestSourceRoundTrip(t *testing.T) {
	doc, err := ParseString(statusConfig)
	require.NoError(t, err)
	out, err := Render(doc)
	require.NoError(t, err)
	if d := cmp.Diff(statusConfig, out); d != "" {
		t.Errorf("render changed canonical text (-want +got):\n%s", d)
	}
}

func TestTreeRoundTrip(t *testing.T) {
	doc, err := ParseString(statusConfig)
	require.NoError(t, err)

	data, err := ToJSON(doc)
	require.NoError(t, err)
	back, err := FromJSON(data)
	require.NoError(t, err)

	// semantic equality via the canonical trees
	origTree, err := ToJSON(doc)
	require.NoError(t, err)
	backTree, err := ToJSON(back)
	require.NoError(t, err)
	require.Equal(t, string(origTree), string(backTree))

	// and the rebuilt AST renders the same canonical text
	out, err := Render(back)
	require.NoError(t, err)
	require.Equal(t, statusConfig, out)
}

func TestEmptyAndCommentOnly(t *testing.T) {
	_, err := ParseString("")
	require.ErrorIs(t, err, parse.ErrEmptyInput)

	_, err = ParseString(" \n\t ")
	require.ErrorIs(t, err, parse.ErrEmptyInput)

	_, err = ParseString("# nothing but commentary\n")
	require.ErrorIs(t, err, parse.ErrSyntax)
	require.False(t, errors.Is(err, parse.ErrEmptyInput))
}

func TestFragmentFacade(t *testing.T) {
	n, err := Fragment(ast.KindArray, []byte(`[1, 2, 3]`))
	require.NoError(t, err)
	require.Len(t, n.(*ast.Array).Elems, 3)

	out, err := Render(n)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]", out)
}
