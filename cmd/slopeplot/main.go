package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/slopeplot"
	"github.com/osuushi/slopeplot/advanced"
	"github.com/osuushi/slopeplot/config"
	"github.com/osuushi/slopeplot/dbg"
	"github.com/osuushi/slopeplot/expression"
)

// Samples a function, writes the text dumps and renders the colored line
// strip to a PNG. Run "slopeplot classify" on a raw dump to read the segment
// classes back, or "slopeplot presets" to list the built in expressions.
var (
	app     = kingpin.New("slopeplot", "Sample a function into a vertex buffer and color its segments by slope.")
	verbose = app.Flag("verbose", "Log every pipeline stage.").Short('v').Bool()

	buildCmd    = app.Command("build", "Build, export and render a graph.").Default()
	configPath  = buildCmd.Flag("config", "YAML config file.").ExistingFile()
	mode        = buildCmd.Flag("mode", "Graph mode.").Enum("line", "surface", "spiral")
	exprSource  = buildCmd.Flag("expr", "Expression in x (line) or x and y (surface).").String()
	presetName  = buildCmd.Flag("preset", "Use a named expression preset; sets the mode too.").String()
	xMin        = buildCmd.Flag("x-min", "Lower x bound.").Float64()
	xMax        = buildCmd.Flag("x-max", "Upper x bound.").Float64()
	yMin        = buildCmd.Flag("y-min", "Lower y bound (surface).").Float64()
	yMax        = buildCmd.Flag("y-max", "Upper y bound (surface).").Float64()
	samples     = buildCmd.Flag("samples", "Samples per axis.").Int()
	turns       = buildCmd.Flag("turns", "Spiral turns per half of the samples.").Float64()
	clamp       = buildCmd.Flag("clamp", "Draw constant line graphs at y = 0 instead of failing.").Bool()
	parallel    = buildCmd.Flag("parallel", "Sampling goroutines; 1 or less samples serially.").Int()
	outDir      = buildCmd.Flag("out", "Output directory.").String()
	pngPath     = buildCmd.Flag("png", "PNG file to render to.").String()
	svgPath     = buildCmd.Flag("svg", "SVG file to render to.").String()
	showImage   = buildCmd.Flag("imgcat", "Print the PNG in the terminal (iTerm only).").Bool()
	skipExports = buildCmd.Flag("no-export", "Skip the text dumps.").Bool()

	classifyCmd  = app.Command("classify", "Print the segment classes of a raw dump or SVG.")
	classifyPath = classifyCmd.Arg("file", "vertex_raw.txt or an SVG written by build.").Required().ExistingFile()

	presetsCmd = app.Command("presets", "List the expression presets.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case buildCmd.FullCommand():
		err = runBuild()
	case classifyCmd.FullCommand():
		err = runClassify(*classifyPath)
	case presetsCmd.FullCommand():
		for _, p := range expression.Presets() {
			fmt.Printf("%-12s %-8s %s\n", p.Name, p.Mode, p.Source)
		}
	}
	if err != nil {
		log.Fatalf("slopeplot: %v", err)
	}
}

func runBuild() error {
	run := config.Default()
	if *configPath != "" {
		var err error
		if run, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if err := applyFlags(&run); err != nil {
		return err
	}
	if *verbose {
		log.Printf("config:\n%s", dbg.Dump(run))
	}

	buildMode, err := advanced.ParseMode(run.Mode)
	if err != nil {
		return err
	}
	policy, err := advanced.ParseDegeneratePolicy(run.Degenerate)
	if err != nil {
		return err
	}
	opts := []slopeplot.Option{advanced.WithDegeneratePolicy(policy)}
	if run.Parallel > 1 {
		opts = append(opts, advanced.WithParallel(run.Parallel))
	}

	result, err := slopeplot.BuildString(buildMode, run.AdvancedDomain(), run.SelectedExpression(), opts...)
	if err != nil {
		return err
	}
	fmt.Printf("Built %s\n", result)

	if err := os.MkdirAll(run.Output.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	out := func(name string) string {
		if name == "" {
			return ""
		}
		return filepath.Join(run.Output.Dir, name)
	}

	// Export failures are reported but do not stop the render.
	if !*skipExports {
		paths := slopeplot.Paths{Vertex: out(run.Output.Vertex), Raw: out(run.Output.Raw), Function: out(run.Output.Function)}
		if err := slopeplot.Export(result, paths); err != nil {
			log.Printf("slopeplot: %v", err)
		}
	}

	if run.Output.SVG != "" {
		if err := writeSVG(out(run.Output.SVG), result.Buffer); err != nil {
			return err
		}
	}

	if run.Output.PNG != "" {
		opts := advanced.RenderOptions{
			Width:     run.Render.Width,
			Height:    run.Render.Height,
			LineWidth: run.Render.LineWidth,
			Padding:   advanced.DefaultRenderOptions().Padding,
		}
		if run.Render.Caption {
			opts.Caption = fmt.Sprintf("%s: %s", result.Mode, result.Expression)
		}
		path := out(run.Output.PNG)
		if err := advanced.SavePNG(path, result.Buffer, opts); err != nil {
			return err
		}
		if *showImage {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	return nil
}

func applyFlags(run *config.Run) error {
	if *presetName != "" {
		preset, err := expression.LookupPreset(*presetName)
		if err != nil {
			return err
		}
		run.Mode = preset.Mode.String()
		run.Expression = preset.Source
	}
	if *mode != "" {
		run.Mode = *mode
	}
	if *exprSource != "" {
		run.Expression = *exprSource
	}

	// Only flags given on the command line override the config.
	setFloat := func(flag string, dst *float64, value float64) {
		if flagSet(flag) {
			*dst = value
		}
	}
	setFloat("x-min", &run.Domain.XMin, *xMin)
	setFloat("x-max", &run.Domain.XMax, *xMax)
	setFloat("turns", &run.Domain.Turns, *turns)
	if run.Mode == advanced.Surface.String() {
		setFloat("x-min", &run.Domain.Surface.XMin, *xMin)
		setFloat("x-max", &run.Domain.Surface.XMax, *xMax)
	}
	setFloat("y-min", &run.Domain.Surface.YMin, *yMin)
	setFloat("y-max", &run.Domain.Surface.YMax, *yMax)
	if flagSet("samples") {
		run.Domain.Samples = *samples
	}
	if flagSet("parallel") {
		run.Parallel = *parallel
	}
	if *clamp {
		run.Degenerate = advanced.DegenerateClamp.String()
	}
	if *outDir != "" {
		run.Output.Dir = *outDir
	}
	if *pngPath != "" {
		run.Output.PNG = *pngPath
	}
	if *svgPath != "" {
		run.Output.SVG = *svgPath
	}
	return run.Validate()
}

func flagSet(name string) bool {
	for _, arg := range os.Args[1:] {
		if arg == "--"+name || strings.HasPrefix(arg, "--"+name+"=") {
			return true
		}
	}
	return false
}

func writeSVG(path string, buf *advanced.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create svg")
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return advanced.WriteSVG(f, buf)
}

func runClassify(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer f.Close()

	var buf *advanced.Buffer
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		buf, err = advanced.ReadSVG(f)
	} else {
		buf, err = advanced.ReadRawDump(f)
	}
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("read %d vertices into %s", buf.Len(), dbg.Name(buf))
	}

	counts := map[advanced.Class]int{}
	for _, segment := range slopeplot.Classify(buf) {
		counts[segment.Class]++
		fmt.Printf("%d:\tSlope: %.6f\t%s\n", segment.Index+1, segment.Slope, segment.Class.DbgString())
	}
	fmt.Printf("%d segments: %d %s, %d %s\n", buf.SegmentCount(),
		counts[advanced.NonPositive], advanced.NonPositive.DbgString(),
		counts[advanced.Positive], advanced.Positive.DbgString())
	return nil
}
