// Command raytrace renders one of the builtin scenes, or a scene file
// loaded through pkg/loader, to a PNG file.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/jpeterson-dev/wray/pkg/loader"
	"github.com/jpeterson-dev/wray/pkg/logging"
	"github.com/jpeterson-dev/wray/pkg/renderer"
	"github.com/jpeterson-dev/wray/pkg/scene"
)

var logger = logging.New("raytrace")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		logging.SetLevel(logging.Info)
	}
	if ctx.GlobalBool("vv") {
		logging.SetLevel(logging.Debug)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "raytrace"
	app.Usage = "render scenes with a recursive Whitted ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "enable even more verbose logging"},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a scene to a PNG file",
			ArgsUsage: "[scene-file]",
			Description: `
Render a builtin scene, selected with --scene, or a scene file passed as
the first argument and read through pkg/loader.`,
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 640, Usage: "image width"},
				cli.IntFlag{Name: "height", Value: 480, Usage: "image height"},
				cli.IntFlag{Name: "threads", Value: 4, Usage: "worker count"},
				cli.IntFlag{Name: "depth", Value: 5, Usage: "maximum recursion depth"},
				cli.IntFlag{Name: "samples", Value: 0, Usage: "adaptive AA sub-pixel grid dimension, 0 disables AA"},
				cli.Float64Flag{Name: "aa-threshold", Value: 0.1, Usage: "AA edge-detection threshold"},
				cli.BoolFlag{Name: "no-kd", Usage: "disable KD-tree acceleration"},
				cli.StringFlag{Name: "scene", Value: "red-sphere", Usage: "builtin scene name, ignored if a scene file argument is given"},
				cli.StringFlag{Name: "out, o", Value: "render.png", Usage: "output PNG path"},
			},
			Action: renderCommand,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin scenes",
			Action: scenesCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Printf("error: %s", err.Error())
		os.Exit(1)
	}
}

func scenesCommand(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Name", "Description"})
	for _, b := range scene.Builtins {
		table.Append([]string{b.Name, b.Description})
	}
	table.Render()
	fmt.Print(buf.String())
	return nil
}

func resolveScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() > 0 {
		return loader.LoadScene(ctx.Args().First())
	}

	name := ctx.String("scene")
	for _, b := range scene.Builtins {
		if b.Name == name {
			return b.New(), nil
		}
	}
	return nil, fmt.Errorf("unknown builtin scene %q (see the scenes command)", name)
}

func renderCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}

	sc, err := resolveScene(ctx)
	if err != nil {
		return err
	}

	cfg := renderer.DefaultConfig()
	cfg.NumThreads = ctx.Int("threads")
	cfg.MaxRecursionDepth = ctx.Int("depth")
	cfg.Samples = ctx.Int("samples")
	cfg.AAThresh = ctx.Float64("aa-threshold")
	cfg.UseKD = !ctx.Bool("no-kd")
	cfg.Cube = sc.CubeMap()
	cfg.Logger = logger

	if cfg.UseKD {
		sc.BuildIndex(cfg.KDMaxDepth, cfg.KDLeafSize)
	}

	tracer := renderer.NewTracer(sc, cfg.Threshold())
	driver := renderer.NewImageDriver(tracer, sc.Cam, cfg)
	driver.TraceSetup(width, height)

	start := time.Now()
	driver.TraceImage()
	driver.WaitRender()
	driver.AAImage()
	renderTime := time.Since(start)

	if err := writePNG(ctx.String("out"), driver.Buffer(), width, height); err != nil {
		return err
	}

	displayStats(sc, renderTime, cfg)
	logger.Printf("wrote %s", ctx.String("out"))
	return nil
}

// writePNG encodes the driver's bottom-up RGB buffer as a top-down PNG.
func writePNG(path string, buf []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		row := height - 1 - j // buffer row 0 is the bottom of the image
		for i := 0; i < width; i++ {
			off := (i + j*width) * 3
			img.Set(i, row, color.RGBA{R: buf[off], G: buf[off+1], B: buf[off+2], A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func displayStats(sc *scene.Scene, renderTime time.Duration, cfg *renderer.Config) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Render time", renderTime.String()})
	table.Append([]string{"Threads", fmt.Sprintf("%d", cfg.NumThreads)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", cfg.MaxRecursionDepth)})

	if cfg.UseKD {
		stats := sc.KDStats()
		table.Append([]string{"KD nodes", fmt.Sprintf("%d", stats.Nodes)})
		table.Append([]string{"KD leaves", fmt.Sprintf("%d", stats.Leaves)})
		table.Append([]string{"KD max depth", fmt.Sprintf("%d", stats.MaxDepth)})
		table.Append([]string{"KD shapes (leaf refs)", fmt.Sprintf("%d", stats.TotalShapes)})
	}

	table.Render()
	logger.Printf("render statistics\n%s", buf.String())
}
