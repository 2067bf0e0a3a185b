package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of Delaunay triangulation. Input on stdin should be newline separated
// points in the form "x y". The triangulation can be written as a PNG, as WKT,
// or as a rough ASCII picture.
var (
	app = kingpin.New("delaunay", "Triangulate points read from stdin.")

	configPath = app.Flag("config", "YAML file with engine and render settings.").Short('c').ExistingFile()
	pngPath    = app.Flag("png", "Write a PNG rendering to this path.").String()
	showImgcat = app.Flag("imgcat", "Print a rendering inline (iTerm only).").Bool()
	printWKT   = app.Flag("wkt", "Print the triangulation as WKT.").Bool()
	asciiSize  = app.Flag("ascii", "Print an ASCII picture of the given size, like 60x20.").PlaceHolder("WxH").String()
	scale      = app.Flag("scale", "Pixels per unit when rendering.").Float64()
	workers    = app.Flag("workers", "Goroutines used per insertion.").Int()
	precision  = app.Flag("precision", "Maximum decimal digits in WKT output.").Int()
	validate   = app.Flag("validate", "Check the result before writing it.").Bool()
	verbose    = app.Flag("verbose", "Log debug output.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(os.Stderr, *verbose)
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}
	cfg = applyFlags(cfg)

	points, err := readPoints(os.Stdin)
	if err != nil {
		logger.Fatal("could not read points", "err", err)
	}
	logger.Info("read points", "count", len(points))

	triangles, err := delaunay.TriangulateWithOptions(cfg.options(logger), points...)
	if err != nil {
		logger.Fatal("triangulation failed", "err", err)
	}
	logger.Info("triangulated", "triangles", len(triangles))

	if *validate {
		if err := triangles.Validate(points); err != nil {
			logger.Fatal("invalid triangulation", "err", err)
		}
		logger.Info("triangulation is valid")
	}

	if err := write(os.Stdout, triangles, cfg, logger); err != nil {
		logger.Fatal("could not write output", "err", err)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "delaunay"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Flags that were given win over the config file.
func applyFlags(cfg config) config {
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *precision > 0 {
		cfg.Precision = *precision
	}
	return cfg
}

func write(out io.Writer, triangles delaunay.TriangleList, cfg config, logger *log.Logger) error {
	if *printWKT {
		text, err := triangles.WKT(cfg.Precision)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}

	if *asciiSize != "" {
		width, height, ok := parseSize(*asciiSize)
		if !ok {
			return errors.Errorf("bad ascii size %q, want something like 60x20", *asciiSize)
		}
		fmt.Fprint(out, renderRaster(rasterize(triangles, width, height)))
	}

	path := *pngPath
	if path == "" && *showImgcat {
		path = filepath.Join(os.TempDir(), "delaunay.png")
	}
	if path != "" {
		if err := triangles.SavePNG(path, cfg.Scale); err != nil {
			return err
		}
		logger.Debug("wrote png", "path", path)
	}
	if *showImgcat {
		return imgcat.CatFile(path, out)
	}
	return nil
}
