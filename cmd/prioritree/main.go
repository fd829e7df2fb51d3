package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/ar90n/prioritree/collection"
	"github.com/ar90n/prioritree/pipeline"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v2"
)

type command struct {
	logger log.Logger
}

func (cmd *command) before(c *cli.Context) error {
	logger, err := newLogger(c.App.ErrWriter, c.String("log-level"))
	if err != nil {
		return err
	}
	cmd.logger = logger
	return nil
}

func (cmd *command) sortAction(c *cli.Context) error {
	backend := c.String("backend")
	q, err := newQueue[string](backend)
	if err != nil {
		return err
	}

	entries, err := loadEntries(c.String("input"))
	if err != nil {
		return err
	}
	for _, e := range entries {
		q.Enqueue(e.Value, e.Priority)
	}
	level.Debug(cmd.logger).Log("msg", "loaded entries", "backend", backend, "entries", q.Len())

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	stream := pipeline.Drain[string](ctx, q)
	if limit := c.Uint("limit"); 0 < limit {
		stream = pipeline.Take(ctx, limit, stream)
	}

	w := bufio.NewWriter(c.App.Writer)
	for entry := range stream {
		fmt.Fprintln(w, entry)
	}
	return w.Flush()
}

func (cmd *command) dumpAction(c *cli.Context) error {
	entries, err := loadEntries(c.String("input"))
	if err != nil {
		return err
	}

	q := collection.NewBstPriorityQueue[string]()
	for _, e := range entries {
		q.Enqueue(e.Value, e.Priority)
	}
	level.Debug(cmd.logger).Log("msg", "loaded entries", "entries", q.Size())

	_, err = fmt.Fprint(c.App.Writer, q.String())
	return err
}

func (cmd *command) benchAction(c *cli.Context) error {
	cfg := benchConfig{
		Queues:        c.Uint("queues"),
		Entries:       c.Uint("entries"),
		MaxPriority:   c.Uint("max-priority"),
		Seed:          c.Int64("seed"),
		MaxGoroutines: c.Uint("max-goroutines"),
	}

	level.Info(cmd.logger).Log("msg", "running benchmark", "queues", cfg.Queues, "entries", cfg.Entries, "max_priority", cfg.MaxPriority)
	_, err := runBench(c.Context, cmd.logger, cfg)
	return err
}

func newInputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "input",
		Value: "-",
		Usage: "input file with one \"<priority> <value>\" entry per line, - for stdin",
	}
}

func newApp() *cli.App {
	cmd := &command{logger: log.NewNopLogger()}

	return &cli.App{
		Name:     "prioritree",
		HelpName: "prioritree",
		Usage:    "sort and benchmark with bst priority queues",
		Before:   cmd.before,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "print entries in dequeue order",
				UsageText: "prioritree sort [command options]",
				Action:    cmd.sortAction,
				Flags: []cli.Flag{
					newInputFlag(),
					&cli.StringFlag{
						Name:  "backend",
						Value: backendBst,
						Usage: "queue backend (bst, heap, btree)",
					},
					&cli.UintFlag{
						Name:  "limit",
						Value: 0,
						Usage: "maximum number of entries to print, 0 for all",
					},
				},
			},
			{
				Name:      "dump",
				Usage:     "print the in-order rendering of the bst queue",
				UsageText: "prioritree dump [command options]",
				Action:    cmd.dumpAction,
				Flags: []cli.Flag{
					newInputFlag(),
				},
			},
			{
				Name:      "bench",
				Usage:     "compare backends on random workloads",
				UsageText: "prioritree bench [command options]",
				Action:    cmd.benchAction,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  "queues",
						Value: 64,
						Usage: "number of independent queues",
					},
					&cli.UintFlag{
						Name:  "entries",
						Value: 10000,
						Usage: "entries per queue",
					},
					&cli.UintFlag{
						Name:  "max-priority",
						Value: 1000,
						Usage: "priorities are drawn from [0, max-priority)",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
						Usage: "random seed",
					},
					&cli.UintFlag{
						Name:  "max-goroutines",
						Value: 0,
						Usage: "number of workers, 0 for one per cpu",
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}
