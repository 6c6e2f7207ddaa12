// Package main is the entry point for lyrebird.
package main

import (
	"github.com/lyrebird-cli/lyrebird/cmd"
	"github.com/lyrebird-cli/lyrebird/config"
	"github.com/lyrebird-cli/lyrebird/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go log.CollectGarbage()

	cmd.Execute()
}
