// Package debug gates diagnostic output on LSCONF_DEBUG_* environment
// variables, read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Render bool
	Tree   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("LSCONF_DEBUG_PARSE")
	d.Render = boolEnv("LSCONF_DEBUG_RENDER")
	d.Tree = boolEnv("LSCONF_DEBUG_TREE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Render() bool {
	return d.Render
}
func Tree() bool {
	return d.Tree
}
