package render

import (
	"github.com/elastide/lsconf/ast"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ast.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
	KeywordColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Kind: ast.KindSection, Attr: NameColor}] = color.New(color.FgYellow, color.Bold).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindPlugin, Attr: NameColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindMethodCall, Attr: NameColor}] = color.RGB(196, 96, 16).SprintfFunc()

	colors.Map[Colorable{Kind: ast.KindString, Attr: ValueColor}] = color.GreenString
	colors.Map[Colorable{Kind: ast.KindNumber, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindBoolean, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindRegexp, Attr: ValueColor}] = color.RedString
	colors.Map[Colorable{Kind: ast.KindSelector, Attr: ValueColor}] = color.CyanString

	colors.Map[Colorable{Kind: ast.KindAttribute, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindCompare, Attr: SepColor}] = color.MagentaString
	colors.Map[Colorable{Kind: ast.KindNot, Attr: SepColor}] = color.MagentaString

	colors.Map[Colorable{Kind: ast.KindBranch, Attr: KeywordColor}] = color.New(color.FgBlue, color.Bold).SprintfFunc()
	colors.Map[Colorable{Kind: ast.KindBoolExpr, Attr: KeywordColor}] = color.BlueString
	colors.Map[Colorable{Kind: ast.KindIn, Attr: KeywordColor}] = color.BlueString

	return colors
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(kind ast.Kind, attr ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: kind, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
