package token

import (
	"testing"
)

type quotedTest struct {
	in   string
	want string
	err  bool
}

func TestDecodeQuoted(t *testing.T) {
	qts := []quotedTest{
		{in: `"hello"`, want: "hello"},
		{in: `'hello'`, want: "hello"},
		{in: `""`, want: ""},
		{in: `"a\nb"`, want: "a\nb"},
		{in: `"a\tb"`, want: "a\tb"},
		{in: `"say \"hi\""`, want: `say "hi"`},
		{in: `'it\'s'`, want: "it's"},
		{in: `"back\\slash"`, want: `back\slash`},
		// unknown escapes keep their backslash
		{in: `"\d+"`, want: `\d+`},
		{in: `"\w"`, want: `\w`},
		{in: `"`, err: true},
		{in: `"unterminated`, err: true},
		{in: `"wrong'`, err: true},
		{in: `"trailing\`, err: true},
		{in: `x"quoted"`, err: true},
	}
	for _, qt := range qts {
		got, err := DecodeQuoted(qt.in)
		if qt.err {
			if err == nil {
				t.Errorf("DecodeQuoted(%q): expected error, got %q", qt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeQuoted(%q): %v", qt.in, err)
			continue
		}
		if got != qt.want {
			t.Errorf("DecodeQuoted(%q) = %q, want %q", qt.in, got, qt.want)
		}
	}
}

func TestEncodeQuoted(t *testing.T) {
	round := []string{"hello", "", "a\nb", `say "hi"`, "it's", `back\slash`}
	for _, v := range round {
		for _, q := range []byte{'"', '\''} {
			enc := EncodeQuoted(v, q)
			got, err := DecodeQuoted(enc)
			if err != nil {
				t.Errorf("DecodeQuoted(EncodeQuoted(%q, %c)): %v", v, q, err)
				continue
			}
			if got != v {
				t.Errorf("EncodeQuoted(%q, %c) round trip = %q", v, q, got)
			}
		}
	}
}
