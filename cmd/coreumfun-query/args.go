package main

import (
	"coreum-fun/modules/aggregate"
	"coreum-fun/modules/config"
	"coreum-fun/modules/contract/descriptor"
	"coreum-fun/modules/coreumfun"
	"fmt"
	"io"
	"strings"

	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v2"
)

// newApp prints replies to out. Logs go to logOut, or to the console when
// it is nil.
func newApp(out io.Writer, logOut io.Writer) *cli.App {
	return &cli.App{
		Name:   "coreumfun-query",
		Usage:  "run read-only queries against the coreum-fun lottery contract",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding config/ClientConfig.json",
				Value: config.DATA_DIR,
			},
			&cli.StringFlag{
				Name:  "lcd",
				Usage: "LCD endpoint, overrides the config file",
			},
			&cli.StringFlag{
				Name:  "contract",
				Usage: "contract address, overrides the config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list the contract's queries",
				Action: func(c *cli.Context) error { return listQueries(out) },
			},
			{
				Name:      "query",
				Usage:     "send one query and print the reply",
				ArgsUsage: "<operation> [key=value ...]",
				Action:    runQuery(out, logOut),
			},
		},
	}
}

func listQueries(out io.Writer) error {
	for _, op := range coreumfun.Operations {
		if op.Kind != descriptor.Query {
			continue
		}
		params := make([]string, len(op.Params))
		for i, p := range op.Params {
			params[i] = p.Name + ": " + p.Type
			if p.Optional {
				params[i] = p.Name + "?: " + p.Type
			}
		}
		if _, err := fmt.Fprintf(out, "%s(%s) -> %s\n", op.Method, strings.Join(params, ", "), op.Response); err != nil {
			return err
		}
	}
	return nil
}

func runQuery(out io.Writer, logOut io.Writer) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: operation name required", ErrBadArgument)
		}
		op, err := findQuery(c.Args().First())
		if err != nil {
			return err
		}
		args, err := buildArgs(op, c.Args().Tail())
		if err != nil {
			return err
		}

		dataDir := c.String("data-dir")
		conf := config.NewClientConfig(&dataDir)

		overrides := optional.None[config.ClientConfig]()
		if c.IsSet("lcd") || c.IsSet("contract") {
			overrides = optional.Some(config.ClientConfig{
				LcdURL:          c.String("lcd"),
				ContractAddress: c.String("contract"),
			})
		}
		r := &runner{
			conf:      conf,
			overrides: overrides,
			op:        op,
			args:      args,
			out:       out,
			logOut:    logOut,
		}
		return aggregate.New([]aggregate.Plugin{conf, r}).Run()
	}
}
