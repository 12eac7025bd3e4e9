package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"deedles.dev/dsa"
)

var defaultQueueItems = []string{
	"Envision the moon landing",
	"Create rocket blueprint",
	"Build rocket",
	"Launch the rocket and land on the moon",
}

func addQueueCommand(app *kingpin.Application, d *demo) {
	var items []string

	cmd := app.Command("queue", "Enqueue items, then drain the queue in FIFO order.")
	cmd.Flag("item", "Item to enqueue. May be repeated.").Default(defaultQueueItems...).StringsVar(&items)

	cmd.Action(func(*kingpin.ParseContext) error {
		return d.runQueue(items)
	})
}

func (d *demo) runQueue(items []string) error {
	d.heading("Queue")

	var q dsa.Queue[string]
	for _, item := range items {
		q.Enqueue(item)
	}
	level.Debug(d.logger).Log("msg", "enqueued items", "count", q.Len())

	for !q.IsEmpty() {
		d.println("Length", q.Len())
		d.println("Peek", optional(q.Peek()))
		d.println("Dequeue", optional(q.Dequeue()))
	}
	d.println("Empty", q.IsEmpty())

	return nil
}
