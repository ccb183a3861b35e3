// contract_gen turns a contract interface description into a typed Go
// client. Nothing is written unless the whole description is valid.
package main

import (
	"coreum-fun/lib/logger"
	"coreum-fun/modules/contract/codegen"
	"coreum-fun/modules/contract/descriptor"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:  "contract-gen",
		Usage: "generate a typed contract client from an interface description",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "interface description (JSON)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "generated Go file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package name of the generated file",
				Value: "contract",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every generated operation",
			},
		},
		Action: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			return generate(
				logger.New("contract-gen", level),
				c.String("input"),
				c.String("output"),
				c.String("package"),
			)
		},
	}
}

func generate(log logger.Logger, input string, output string, pkg string) error {
	desc, err := descriptor.Load(input)
	if err != nil {
		return err
	}
	ops, err := descriptor.Build(desc)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	for _, op := range ops {
		log.Debug("operation", "kind", op.Kind.String(), "tag", op.Tag, "method", op.GoName)
	}

	src, err := codegen.Render(codegen.Settings{
		Package: pkg,
		Source:  filepath.Base(input),
	}, ops)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		return err
	}
	log.Info("generated client", "contract", desc.Contract, "operations", len(ops), "output", output)
	return nil
}
