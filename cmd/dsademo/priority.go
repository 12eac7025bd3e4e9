package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"deedles.dev/dsa"
)

var defaultTasks = []string{
	"Task 1:high",
	"Task 2:low",
	"Task 3:high",
	"Task 4:low",
}

type task struct {
	name string
	high bool
}

// parseTask parses a task of the form "name:high" or "name:low".
func parseTask(s string) (task, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return task{}, fmt.Errorf("task %q has no priority", s)
	}

	name, prio := s[:i], s[i+1:]
	switch prio {
	case "high":
		return task{name: name, high: true}, nil
	case "low":
		return task{name: name}, nil
	default:
		return task{}, fmt.Errorf("task %q has unknown priority %q", s, prio)
	}
}

func addPriorityCommand(app *kingpin.Application, d *demo) {
	var tasks []string

	cmd := app.Command("priority", "Enqueue tasks with high or low priority, then drain the queue.")
	cmd.Flag("task", "Task to enqueue as name:high or name:low. May be repeated.").Default(defaultTasks...).StringsVar(&tasks)

	cmd.Action(func(*kingpin.ParseContext) error {
		return d.runPriority(tasks)
	})
}

func (d *demo) runPriority(tasks []string) error {
	d.heading("Priority queue")

	var pq dsa.PriorityQueue[string]
	for _, s := range tasks {
		t, err := parseTask(s)
		if err != nil {
			return fmt.Errorf("parse task: %w", err)
		}
		pq.Enqueue(t.name, t.high)
		level.Debug(d.logger).Log("msg", "enqueued task", "name", t.name, "high", t.high)
	}

	for !pq.IsEmpty() {
		d.println("Peek", optional(pq.Peek()))
		d.println("Dequeue", optional(pq.Dequeue()))
	}
	d.println("Empty", pq.IsEmpty())
	d.println("Length", pq.Len())

	return nil
}
