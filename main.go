package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/achilleasa/go-bvh/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-bvh"
	app.Usage = "build and query bounding volume hierarchies"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "query",
			Usage: "build a tree over a synthetic triangle grid and run point queries against it",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count",
					Value: 1000,
					Usage: "number of triangles to generate",
				},
				cli.IntFlag{
					Name:  "queries",
					Value: 1000,
					Usage: "number of random query points",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed",
				},
			},
			Action: cmd.Query,
		},
		{
			Name:  "bench",
			Usage: "compare point query time across an increasing number of worker threads",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count",
					Value: 100000,
					Usage: "number of triangles to generate",
				},
				cli.IntFlag{
					Name:  "queries",
					Value: 100000,
					Usage: "number of random query points",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed",
				},
			},
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
