package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the signal arity family",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of signal arities to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "sigslot/signals.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for sigslot started!")
	defer func() {
		log.Printf("Codegen for sigslot finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	contents := templates.SignalsGen(count)
	return os.WriteFile(cmd.String(outputKey), []byte(contents), 0644)
}
