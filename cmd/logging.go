package cmd

import (
	"github.com/urfave/cli"

	"github.com/achilleasa/go-bvh/log"
)

var logger = log.New("go-bvh")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
