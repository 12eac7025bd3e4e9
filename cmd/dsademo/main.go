// Command dsademo walks through the containers in deedles.dev/dsa,
// printing the result of each operation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// none is printed in place of a value when an operation has nothing
// to return.
const none = "<none>"

type demo struct {
	out    io.Writer
	logger log.Logger
	bold   *color.Color
}

func (d *demo) heading(title string) {
	d.bold.Fprintln(d.out, title)
}

func (d *demo) println(label string, v any) {
	fmt.Fprintf(d.out, "%v: %v\n", label, v)
}

// optional returns v, or none if ok is false.
func optional[T any](v T, ok bool) any {
	if !ok {
		return none
	}
	return v
}

func newLogger(w io.Writer, lvl string) log.Logger {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func newApp(stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("dsademo", "Demonstrate the dsa containers.")
	app.HelpFlag.Short('h')

	d := demo{
		out:    stdout,
		logger: log.NewNopLogger(),
		bold:   color.New(color.Bold),
	}

	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").
		Enum("debug", "info", "warn", "error")
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	app.PreAction(func(*kingpin.ParseContext) error {
		d.logger = newLogger(stderr, *logLevel)
		if *noColor {
			d.bold.DisableColor()
		}
		return nil
	})

	addListCommand(app, &d)
	addQueueCommand(app, &d)
	addStackCommand(app, &d)
	addPriorityCommand(app, &d)
	addAllCommand(app, &d)

	return app
}

func addAllCommand(app *kingpin.Application, d *demo) {
	app.Command("all", "Run every demonstration with its default input.").
		Action(func(*kingpin.ParseContext) error {
			runs := []func() error{
				func() error { return d.runList(defaultListConfig()) },
				func() error { return d.runQueue(defaultQueueItems) },
				func() error { return d.runStack(defaultStackItems) },
				func() error { return d.runPriority(defaultTasks) },
			}
			for i, run := range runs {
				if i > 0 {
					fmt.Fprintln(d.out)
				}
				if err := run(); err != nil {
					return err
				}
			}
			return nil
		})
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(fmt.Errorf("dsademo: %w", err))
	}
}
