package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/slotparty/sigslot"
)

const (
	emittersKey  = "emitters"
	emissionsKey = "emissions"
)

// Each emitter goroutine owns one signal, all deferred onto a single shared
// evaluator drained by the main goroutine. Verifies the delivery contract:
// every emission runs exactly once, and per-signal enqueue order is kept.
func main() {
	cmd := &cli.Command{
		Name:  "stress",
		Usage: "Hammer one shared ConnectionEvaluator from many goroutines",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  emittersKey,
				Usage: "Number of emitting goroutines, one signal each",
				Value: 8,
			},
			&cli.UintFlag{
				Name:  emissionsKey,
				Usage: "Emissions per goroutine",
				Value: 100_000,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	emitters := int(cmd.Uint(emittersKey))
	emissions := uint64(cmd.Uint(emissionsKey))

	log.Printf("starting stress: %d emitters x %s emissions",
		emitters, humanize.Comma(int64(emissions)))

	evaluator := sigslot.NewConnectionEvaluator()
	seen := mapset.NewSet[uint64]()
	digests := make([]*xxhash.Digest, emitters)
	delivered := make([]uint64, emitters)

	var wg sync.WaitGroup
	start := time.Now()
	for g := 0; g < emitters; g++ {
		g := g
		digests[g] = xxhash.New()

		var sig sigslot.Signal2[uint64, uint64]
		sig.ConnectDeferred(evaluator, func(globalID, seq uint64) {
			// Slots run only on the draining goroutine, so plain state is fine
			// here; the set still guards against double delivery.
			if !seen.Add(globalID) {
				log.Fatalf("emission %d delivered twice", globalID)
			}
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], seq)
			digests[g].Write(buf[:])
			delivered[g]++
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			base := uint64(g) * emissions
			for i := uint64(0); i < emissions; i++ {
				sig.Emit(base+i, i)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for drained := false; !drained; {
		evaluator.EvaluateDeferredConnections()
		select {
		case <-done:
			evaluator.EvaluateDeferredConnections()
			drained = true
		default:
			time.Sleep(time.Millisecond)
		}
	}
	elapsed := time.Since(start)

	// The expected digest is what an uncontended in-order delivery produces.
	expected := xxhash.New()
	for i := uint64(0); i < emissions; i++ {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], i)
		expected.Write(buf[:])
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"emitter", "delivered", "in order"})
	ok := true
	for g := 0; g < emitters; g++ {
		ordered := digests[g].Sum64() == expected.Sum64()
		if delivered[g] != emissions || !ordered {
			ok = false
		}
		table.Append([]string{
			fmt.Sprint(g),
			humanize.Comma(int64(delivered[g])),
			fmt.Sprint(ordered),
		})
	}
	table.Append([]string{
		"total",
		humanize.Comma(int64(seen.Cardinality())),
		fmt.Sprint(seen.Cardinality() == emitters*int(emissions)),
	})
	table.Render()

	rate := float64(seen.Cardinality()) / (float64(elapsed) / float64(time.Second))
	log.Printf("drained %s emissions in %v (%s/s)",
		humanize.Comma(int64(seen.Cardinality())), elapsed, humanize.Comma(int64(rate)))

	if !ok || seen.Cardinality() != emitters*int(emissions) {
		return fmt.Errorf("delivery contract violated")
	}
	return nil
}
