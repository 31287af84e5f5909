package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

var theLog = hclog.New(&hclog.LoggerOptions{
	Name:   "lsconf",
	Output: os.Stderr,
	Level:  hclog.Warn,
})

func setVerbose(v bool) {
	if v {
		theLog.SetLevel(hclog.Debug)
	}
}
