package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/log"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/df07/go-recursive-raytracer/web/server"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

// errUnknownFormat is returned for output files that are neither .ppm nor .png
var errUnknownFormat = errors.New("unknown output format")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// newApp builds the command line application. The version flag is renamed
// so that -v stays free for verbose logging.
func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with a recursive Whitted ray tracer"
	app.Version = "0.1.0"
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
			Name:  "render",
			Usage: "render a scene to a PPM or PNG file",
			Description: `
Render one of the built-in scenes. The output format is chosen from the
file extension of --out. Width, height and field of view default to the
scene's own camera settings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height in pixels",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "horizontal field of view in degrees",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: renderer.DefaultConfig().TileSize,
					Usage: "tile size in pixels",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "add the meshes of a Wavefront OBJ file to the scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "output file (.ppm or .png)",
				},
			},
			Action: renderCommand,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
		{
			Name:  "serve",
			Usage: "serve scenes and renders over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
			},
			Action: func(ctx *cli.Context) error {
				setupLogging(ctx)
				return server.NewServer(ctx.Int("port")).Start()
			},
		},
	}

	return app
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func renderCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx.String("scene"), scene.CameraConfig{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		FOV:    ctx.Float64("fov") * math.Pi / 180,
	})
	if err != nil {
		return err
	}
	if objFile := ctx.String("obj"); objFile != "" {
		if err := addOBJ(sc.World, objFile); err != nil {
			return err
		}
	}
	if err := sc.World.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", ctx.String("scene"), err)
	}

	out := ctx.String("out")
	if _, err := outputFormat(out); err != nil {
		return err
	}

	// Ctrl-C stops the render instead of killing the process mid-write
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := renderer.Config{
		Workers:  ctx.Int("workers"),
		TileSize: ctx.Int("tile-size"),
		Logger:   logger,
	}
	logger.Noticef("Rendering %s (%d primitives) at %dx%d", ctx.String("scene"), sc.PrimitiveCount(), sc.Camera.Width, sc.Camera.Height)

	camera := renderer.NewCameraFromConfig(sc.Camera)
	canvas, stats, err := camera.RenderParallel(c, sc.World, config)
	if err != nil {
		return err
	}

	displayRenderStats(stats)

	if err := writeImage(out, canvas); err != nil {
		return err
	}
	logger.Noticef("Render saved as %s", out)
	return nil
}

// createScene builds a catalogue scene with the given camera overrides
func createScene(id string, override scene.CameraConfig) (*scene.Scene, error) {
	if id == "" {
		return nil, errors.New("missing scene name")
	}
	return scene.New(id, override)
}

func addOBJ(w *scene.World, filename string) error {
	data, err := loaders.LoadOBJ(filename)
	if err != nil {
		return err
	}
	if data.Ignored > 0 {
		logger.Warningf("%s: ignored %d unrecognised lines", filename, data.Ignored)
	}
	if _, err := data.AddToWorld(w); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	logger.Infof("Loaded %d triangles from %s", data.FaceCount(), filename)
	return nil
}

func outputFormat(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ppm", ".png":
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFormat, filename)
}

// writeImage encodes the canvas by file extension
func writeImage(filename string, canvas *renderer.Canvas) error {
	ext, err := outputFormat(filename)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if ext == ".png" {
		err = png.Encode(file, canvas.ToImage())
	} else {
		err = canvas.WritePPM(file)
	}
	if err != nil {
		return fmt.Errorf("error saving %s: %w", filename, err)
	}
	return file.Close()
}

func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(os.Stdout)
	return nil
}

func writeSceneTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.Name, info.Group, info.Description})
	}
	table.Render()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Tiles", "Workers", "Avg luminance", "Pixels/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.4f", stats.AverageLuminance),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
		stats.Duration.String(),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
