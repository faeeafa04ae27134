package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/internal/tui"
	"github.com/osuushi/lpvisu/problem"
	"github.com/osuushi/lpvisu/region"
	"github.com/osuushi/lpvisu/scene"
)

var (
	app     = kingpin.New("lpvisu", "Draws the feasible region of two-variable linear programs.")
	verbose = app.Flag("verbose", "Log every drawing operation to stderr.").Short('v').Bool()

	renderCmd     = app.Command("render", "Render a problem to PNG, or SVG with --svg.")
	renderFile    = renderCmd.Arg("problem", "Problem file (YAML).").Required().ExistingFile()
	renderOut     = renderCmd.Flag("out", "Output path. Defaults to the problem name with .png or .svg.").Short('o').String()
	renderSVG     = renderCmd.Flag("svg", "Write SVG instead of PNG.").Bool()
	renderImgcat  = renderCmd.Flag("imgcat", "Also show the PNG in the terminal (iTerm2).").Bool()
	renderSolve   = renderCmd.Flag("solve", "Draw the optimum as the pivot and its objective line.").Bool()
	reportCmd     = app.Command("report", "Write an HTML page with the picture and the constraints.")
	reportFile    = reportCmd.Arg("problem", "Problem file (YAML).").Required().ExistingFile()
	reportOut     = reportCmd.Flag("out", "Output path. Defaults to stdout.").Short('o').String()
	reportSolve   = reportCmd.Flag("solve", "Draw the optimum as the pivot and its objective line.").Bool()
	showCmd       = app.Command("show", "Print the vertices of the feasible region.")
	showFile      = showCmd.Arg("problem", "Problem file (YAML).").Required().ExistingFile()
	showSolve     = showCmd.Flag("solve", "Also print the optimum.").Bool()
	playCmd       = app.Command("play", "Play the pivot trajectory, rewriting a PNG at every step.")
	playFile      = playCmd.Arg("problem", "Problem file (YAML).").Required().ExistingFile()
	playOut       = playCmd.Flag("out", "Frame path.").Short('o').Default("lpvisu-frame.png").String()
	playKey       = playCmd.Flag("key", "Wait for Enter between steps.").Bool()
	playWait      = playCmd.Flag("wait", "Delay between steps.").Default("1s").Duration()
	playImgcat    = playCmd.Flag("imgcat", "Show every frame in the terminal (iTerm2).").Bool()
	stepCmd       = app.Command("step", "Step through the pivot trajectory in the terminal.")
	stepFile      = stepCmd.Arg("problem", "Problem file (YAML).").Required().ExistingFile()
	stepInterval  = stepCmd.Flag("interval", "Delay between steps when playing.").Default("500ms").Duration()
	stepAutoplay  = stepCmd.Flag("autoplay", "Start playing right away.").Bool()
	stepObjective = stepCmd.Flag("objective", "Move the objective line through every pivot.").Bool()
)

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "lpvisu: ", log.Ltime|log.Lmicroseconds)
	}

	switch command {
	case renderCmd.FullCommand():
		render(logger)
	case reportCmd.FullCommand():
		report(logger)
	case showCmd.FullCommand():
		show()
	case playCmd.FullCommand():
		play(logger)
	case stepCmd.FullCommand():
		step(logger)
	}
}

// load reads a problem and draws its initial picture. With solve, a missing
// pivot or objective value comes from the optimum.
func load(path string, solve bool, opts scene.Options) (*problem.Problem, *scene.Scene) {
	p, err := problem.Load(path)
	app.FatalIfError(err, "")

	if solve {
		solution, err := problem.Solve(p)
		app.FatalIfError(err, "solving %s", path)
		if p.Xk == nil {
			p.Xk = &[2]float64{solution.X.X, solution.X.Y}
		}
		if p.Obj == nil {
			p.Obj = &solution.Value
		}
	}

	r, err := p.Region()
	app.FatalIfError(err, "%s", path)

	sceneOpts := p.SceneOptions()
	sceneOpts.Logger = opts.Logger
	sceneOpts.Waiter = opts.Waiter
	sceneOpts.OnUpdate = opts.OnUpdate
	s, err := scene.New(r, p.C, sceneOpts)
	app.FatalIfError(err, "%s", path)
	app.FatalIfError(s.Draw(), "drawing %s", path)
	return p, s
}

func outputPath(problemPath, out, ext string) string {
	if out != "" {
		return out
	}
	return strings.TrimSuffix(problemPath, filepath.Ext(problemPath)) + ext
}

func render(logger *log.Logger) {
	_, s := load(*renderFile, *renderSolve, scene.Options{Logger: logger})

	if *renderSVG {
		path := outputPath(*renderFile, *renderOut, ".svg")
		app.FatalIfError(writeFile(path, s.WriteSVG), "")
		fmt.Println(path)
		return
	}

	path := outputPath(*renderFile, *renderOut, ".png")
	app.FatalIfError(s.SavePNG(path), "")
	if *renderImgcat {
		imgcat.CatFile(path, os.Stdout)
	}
	fmt.Println(path)
}

func report(logger *log.Logger) {
	_, s := load(*reportFile, *reportSolve, scene.Options{Logger: logger})

	if *reportOut != "" {
		app.FatalIfError(writeFile(*reportOut, s.HTML), "")
		return
	}
	app.FatalIfError(s.HTML(os.Stdout), "")
}

// writeFile creates path and fills it with write, reporting Close errors too.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

func show() {
	p, err := problem.Load(*showFile)
	app.FatalIfError(err, "")
	r, err := p.Region()
	app.FatalIfError(err, "%s", *showFile)

	names := [2]string{"x1", "x2"}
	if len(p.Variables) == 2 {
		names = [2]string{p.Variables[0], p.Variables[1]}
	}

	fmt.Println(aurora.Bold("max"), region.Row(p.C[0], p.C[1], 0).Expression(names))
	for _, row := range r.Constraints() {
		fmt.Println("   ", row.Format(names))
	}
	fmt.Println()

	base := r.Base()
	fmt.Println(aurora.Bold("vertices"))
	for _, v := range base.Outline().Points {
		fmt.Printf("    %s  %s\n", aurora.Green(v), aurora.Faint(fmt.Sprintf("z = %g", region.Value(p.C, v))))
	}
	fmt.Printf("%s %g\n", aurora.Bold("area"), base.Area())
	fmt.Printf("%s %v\n", aurora.Bold("window"), r.Window())

	if cuts := p.Cuts(); len(cuts) > 0 {
		if err := r.AddCuts(cuts...); err != nil {
			fmt.Println(aurora.Red(err.Error()))
		} else {
			fmt.Println()
			fmt.Println(aurora.Bold("after cuts"))
			for _, v := range r.Active().Outline().Points {
				fmt.Println("   ", aurora.Cyan(v))
			}
		}
	}

	if *showSolve {
		solution, err := problem.Solve(p)
		if err != nil {
			fmt.Println(aurora.Red(err.Error()))
			return
		}
		fmt.Println()
		fmt.Printf("%s %s  z = %s\n", aurora.Bold("optimum"), aurora.Green(solution.X), aurora.Green(solution.Value))
	}
}

func play(logger *log.Logger) {
	onUpdate := func(s *scene.Scene) {
		app.FatalIfError(s.SavePNG(*playOut), "")
		if *playImgcat {
			imgcat.CatFile(*playOut, os.Stdout)
		}
		if pivot, ok := s.Pivot(); ok {
			fmt.Printf("pivot %s  z = %g\n", pivot, region.Value(s.Objective(), pivot))
		}
	}
	p, s := load(*playFile, false, scene.Options{
		Logger:   logger,
		Waiter:   scene.StdinWaiter(),
		OnUpdate: onUpdate,
	})

	path := p.Path()
	if len(path) == 0 {
		app.Fatalf("%s has no trajectory", *playFile)
	}
	// The initial pivot is drawn by Draw; the trajectory starts over
	s.RemovePivot()
	app.FatalIfError(s.PlayTrajectory(path, *playKey, *playWait), "")
}

func step(logger *log.Logger) {
	p, s := load(*stepFile, false, scene.Options{Logger: logger})
	path := p.Path()
	if len(path) == 0 && p.Xk != nil {
		path = []geometry.Point{{X: p.Xk[0], Y: p.Xk[1]}}
	}
	app.FatalIfError(tui.Run(s, path, tui.Options{
		Interval:  *stepInterval,
		Autoplay:  *stepAutoplay,
		Objective: *stepObjective,
	}), "")
}
