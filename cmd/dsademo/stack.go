package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"deedles.dev/dsa"
)

var defaultStackItems = []string{"1", "2", "3"}

func addStackCommand(app *kingpin.Application, d *demo) {
	var items []string

	cmd := app.Command("stack", "Push items, then pop them back off in LIFO order.")
	cmd.Flag("item", "Item to push. May be repeated.").Default(defaultStackItems...).StringsVar(&items)

	cmd.Action(func(*kingpin.ParseContext) error {
		return d.runStack(items)
	})
}

func (d *demo) runStack(items []string) error {
	d.heading("Stack")

	var s dsa.Stack[string]
	for _, item := range items {
		s.Push(item)
	}
	level.Debug(d.logger).Log("msg", "pushed items", "count", s.Len())

	d.println("Length", s.Len())
	d.println("Peek", optional(s.Peek()))

	for s.Len() > 1 {
		d.println("Pop", optional(s.Pop()))
	}
	d.println("Length", s.Len())
	d.println("Empty", s.IsEmpty())

	d.println("Pop", optional(s.Pop()))
	d.println("Empty", s.IsEmpty())

	return nil
}
