package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	cpuProfileKey = "cpuprofile"
)

var widths = []int{1, 10, 100, 1_000}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure emit and drain throughput of sigslot signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  iterationsKey,
				Usage: "Emissions per scenario",
				Value: 10_000,
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(iterationsKey))

	log.Printf("warming up")
	benchmarkEmit(1_000, false)
	benchmarkDeferred(1_000, false)
	benchmarkBlocked(1_000, false)

	benchmarkEmit(iters, true)
	benchmarkDeferred(iters, true)
	benchmarkBlocked(iters, true)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{name, calc.Time.Avg, calc.Time.Min, calc.Time.P75, calc.Time.P99, calc.Time.Max},
	})
}

func benchmarkEmit(iters int, shouldRender bool) {
	tbl := newTable("Immediate emit")

	for _, w := range widths {
		var sig sigslot.Signal1[int]
		sink := 0
		for i := 0; i < w; i++ {
			sig.Connect(func(v int) { sink += v })
		}

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(i)
			tach.AddTime(time.Since(start))
		}
		_ = sink

		appendCalc(tbl, fmt.Sprintf("emit: %d slots", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkDeferred(iters int, shouldRender bool) {
	tbl := newTable("Deferred emit + drain")

	for _, w := range widths {
		var sig sigslot.Signal1[int]
		evaluator := sigslot.NewConnectionEvaluator()
		sink := 0
		for i := 0; i < w; i++ {
			sig.ConnectDeferred(evaluator, func(v int) { sink += v })
		}

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(i)
			evaluator.EvaluateDeferredConnections()
			tach.AddTime(time.Since(start))
		}
		_ = sink

		appendCalc(tbl, fmt.Sprintf("emit+drain: %d slots", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkBlocked(iters int, shouldRender bool) {
	tbl := newTable("Blocked emit")

	for _, w := range widths {
		var sig sigslot.Signal1[int]
		sink := 0
		for i := 0; i < w; i++ {
			handle := sig.Connect(func(v int) { sink += v })
			if _, err := handle.Block(true); err != nil {
				log.Fatal(err)
			}
		}

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 0; i < iters; i++ {
			start := time.Now()
			sig.Emit(i)
			tach.AddTime(time.Since(start))
		}
		if sink != 0 {
			log.Fatalf("blocked slots ran: sink=%d", sink)
		}

		appendCalc(tbl, fmt.Sprintf("emit blocked: %d slots", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
