// Command covergen renders deterministic cover images for text files.
//
// Usage:
//
//	covergen [flags] input
//
// input is a text/HTML/Markdown file, a directory of such files, or "-"
// for stdin. Each input produces <name>-landscape.png and <name>-square.png
// in the output directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/covergen/covergen"
	"github.com/covergen/covergen/ggcanvas"
)

func main() {
	var (
		outDir    = flag.String("out", ".", "output directory for generated PNGs")
		mode      = flag.String("mode", "resize", "crop mode: direct or resize")
		backend   = flag.String("backend", "soft", "canvas backend: soft or gg")
		title     = flag.String("title", "", "optional title overlaid on each output")
		minStroke = flag.Float64("min-stroke", covergen.DefaultMinStrokeWidth, "minimum curve stroke width")
		maxStroke = flag.Float64("max-stroke", covergen.DefaultMaxStrokeWidth, "maximum curve stroke width")
		workers   = flag.Int("workers", runtime.NumCPU(), "concurrent renders in directory mode")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: covergen [flags] <file|dir|->")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	covergen.SetLogger(logger)

	cropMode, err := covergen.ParseCropMode(*mode)
	if err != nil {
		fatal(logger, err)
	}

	var opts []covergen.Option
	opts = append(opts, covergen.WithStrokeWidths(*minStroke, *maxStroke))
	if *backend == "gg" {
		opts = append(opts, covergen.WithCanvasFactory(ggcanvas.Factory))
	}

	job := jobConfig{
		outDir:   *outDir,
		cropMode: cropMode,
		title:    *title,
		opts:     opts,
		logger:   logger,
	}

	input := flag.Arg(0)
	switch {
	case input == "-":
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(logger, fmt.Errorf("reading stdin: %w", err))
		}
		if err := job.run("cover", string(text)); err != nil {
			fatal(logger, err)
		}
	case isDir(input):
		if err := runDirectory(job, input, *workers); err != nil {
			fatal(logger, err)
		}
	default:
		text, err := os.ReadFile(input)
		if err != nil {
			fatal(logger, fmt.Errorf("reading %s: %w", input, err))
		}
		if err := job.run(baseName(input), string(text)); err != nil {
			fatal(logger, err)
		}
	}
}

// jobConfig carries everything one render job needs besides its text.
type jobConfig struct {
	outDir   string
	cropMode covergen.CropMode
	title    string
	opts     []covergen.Option
	logger   *slog.Logger
}

// run generates and writes all output formats for one text.
func (j jobConfig) run(name, text string) error {
	res, err := covergen.GenerateMasterImage(text, j.opts...)
	if err != nil {
		return fmt.Errorf("generating %s: %w", name, err)
	}

	formats, err := covergen.DeriveFormats(res.Master, j.cropMode)
	if err != nil {
		return fmt.Errorf("deriving formats for %s: %w", name, err)
	}

	for formatName, img := range formats {
		if j.title != "" {
			if err := covergen.OverlayTitle(img, j.title); err != nil {
				return err
			}
		}
		path := filepath.Join(j.outDir, fmt.Sprintf("%s-%s.png", name, formatName))
		if err := writePNG(path, img); err != nil {
			return err
		}
		j.logger.Info("wrote cover", "path", path, "seed", res.Parameters.Seed)
	}
	return nil
}

// runDirectory renders every text file in dir with a bounded worker pool.
// Safe to parallelize: each render owns its PRNG and noise state.
func runDirectory(job jobConfig, dir string, workers int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	if workers < 1 {
		workers = 1
	}
	paths := make(chan string)
	errs := make(chan error, len(entries))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				text, err := os.ReadFile(path)
				if err != nil {
					errs <- fmt.Errorf("reading %s: %w", path, err)
					continue
				}
				if err := job.run(baseName(path), string(text)); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, e := range entries {
		if e.IsDir() || !isTextFile(e.Name()) {
			continue
		}
		paths <- filepath.Join(dir, e.Name())
	}
	close(paths)
	wg.Wait()
	close(errs)

	var failed int
	for err := range errs {
		job.logger.Error("render failed", "error", err)
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(entries))
	}
	return nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := covergen.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isTextFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", ".html", ".htm":
		return true
	}
	return false
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fatal(logger *slog.Logger, err error) {
	logger.Error(err.Error())
	os.Exit(1)
}
