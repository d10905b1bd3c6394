package main

import (
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/web/server"
	"github.com/urfave/cli"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-web"
	app.Usage = "serve rendered scenes over HTTP"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		log.SetLevel(log.Info)
		logger.Noticef("Visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))
		return server.NewServer(ctx.Int("port")).Start()
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
