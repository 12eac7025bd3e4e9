package main

import (
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"deedles.dev/dsa/list"
)

var defaultListValues = []string{"1", "2", "3", "4", "5"}

type listConfig struct {
	values []string
	get    int
	delete int
}

func defaultListConfig() listConfig {
	return listConfig{values: defaultListValues, get: 2, delete: 2}
}

func addListCommand(app *kingpin.Application, d *demo) {
	var cfg listConfig

	cmd := app.Command("list", "Push values onto a linked list, then look up, delete and pop nodes.")
	cmd.Flag("value", "Value to push. May be repeated.").Default(defaultListValues...).StringsVar(&cfg.values)
	cmd.Flag("get", "Index of the node to look up.").Default("2").IntVar(&cfg.get)
	cmd.Flag("delete", "Index of the node to delete.").Default("2").IntVar(&cfg.delete)

	cmd.Action(func(*kingpin.ParseContext) error {
		return d.runList(cfg)
	})
}

func (d *demo) runList(cfg listConfig) error {
	d.heading("Linked list")

	var ls list.List[string]
	for _, v := range cfg.values {
		ls.Push(v)
	}
	level.Debug(d.logger).Log("msg", "pushed values", "count", ls.Len())
	d.println("Linked list", ls.String())

	d.println("Node at index "+strconv.Itoa(cfg.get), d.nodeVal(ls.Get(cfg.get), "op", "get", "index", cfg.get))

	deleted := ls.Delete(cfg.delete)
	d.println("Deleted node at index "+strconv.Itoa(cfg.delete), d.nodeVal(deleted, "op", "delete", "index", cfg.delete))
	d.println("Updated linked list", ls.String())

	d.println("Removed last node", d.nodeVal(ls.Pop(), "op", "pop"))
	d.println("Final linked list", ls.String())

	return nil
}

// nodeVal returns the value of n, or none if n is nil. keyvals are
// logged alongside the warning in that case.
func (d *demo) nodeVal(n *list.Node[string], keyvals ...any) any {
	if n == nil {
		level.Warn(d.logger).Log(append([]any{"msg", "no node"}, keyvals...)...)
		return none
	}
	return n.Val
}
