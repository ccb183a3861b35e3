package main

import (
	"context"
	"coreum-fun/lib/lcd"
	"coreum-fun/lib/logger"
	"coreum-fun/lib/wasmclient"
	"coreum-fun/modules/aggregate"
	"coreum-fun/modules/config"
	"coreum-fun/modules/contract/descriptor"
	"coreum-fun/modules/coreumfun"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chebyrash/promise"
	"github.com/moznion/go-optional"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNotAQuery        = errors.New("not a query")
	ErrBadArgument      = errors.New("bad argument")
)

// findQuery accepts the camelCase method, the Go method or the wire tag.
func findQuery(name string) (descriptor.Operation, error) {
	for _, op := range coreumfun.Operations {
		if name != op.Method && name != op.GoName && name != op.Tag {
			continue
		}
		if op.Kind != descriptor.Query {
			return descriptor.Operation{}, fmt.Errorf("%w: %s is an execute operation", ErrNotAQuery, op.Method)
		}
		return op, nil
	}
	return descriptor.Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
}

// buildArgs turns key=value pairs into the message fields of op. Keys may be
// given in camelCase or snake_case; optional fields that are left out are
// sent as null.
func buildArgs(op descriptor.Operation, pairs []string) (map[string]any, error) {
	given := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrBadArgument, pair)
		}
		given[k] = v
	}

	fields := make(map[string]any, len(op.Params))
	for _, p := range op.Params {
		raw, ok := given[p.WireName]
		if !ok {
			raw, ok = given[p.Name]
		}
		delete(given, p.WireName)
		delete(given, p.Name)
		if !ok {
			if p.Optional {
				fields[p.WireName] = nil
				continue
			}
			return nil, fmt.Errorf("%w: %s needs %s", ErrBadArgument, op.Method, p.Name)
		}
		v, err := parseValue(p.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadArgument, p.Name, err)
		}
		fields[p.WireName] = v
	}
	for k := range given {
		return nil, fmt.Errorf("%w: %s has no parameter %s", ErrBadArgument, op.Method, k)
	}
	return fields, nil
}

func parseValue(typ string, raw string) (any, error) {
	switch typ {
	case "string", "DrawState":
		return raw, nil
	case "Uint128":
		return wasmclient.ParseUint128(raw)
	default:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// runner is the plugin that sends one query once the config is loaded.
type runner struct {
	conf      *config.Config[config.ClientConfig]
	overrides optional.Option[config.ClientConfig]
	op        descriptor.Operation
	args      map[string]any
	out       io.Writer
	logOut    io.Writer

	log logger.Logger

	client *wasmclient.QueryClient
	ctx    context.Context
	cancel context.CancelFunc
}

var _ aggregate.Plugin = &runner{}

func (r *runner) settings() config.ClientConfig {
	s := r.conf.Get()
	if o, err := r.overrides.Take(); err == nil {
		if o.LcdURL != "" {
			s.LcdURL = o.LcdURL
		}
		if o.ContractAddress != "" {
			s.ContractAddress = o.ContractAddress
		}
	}
	return s
}

func (r *runner) Init() error {
	s := r.settings()
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	if r.logOut != nil {
		r.log = logger.NewWithWriter(r.logOut, "coreumfun-query", level)
	} else {
		r.log = logger.New("coreumfun-query", level)
	}
	chain := lcd.New(s.LcdURL, s.RequestTimeout.Std(), r.log)
	r.client = wasmclient.NewQueryClient(chain, s.ContractAddress)
	r.ctx, r.cancel = context.WithTimeout(context.Background(), s.RequestTimeout.Std())
	return nil
}

func (r *runner) Start() *promise.Promise[any] {
	return promise.Then(
		wasmclient.Query[json.RawMessage](r.ctx, r.client, r.op.Tag, r.args),
		r.ctx,
		func(reply json.RawMessage) (any, error) {
			var pretty any
			if err := json.Unmarshal(reply, &pretty); err != nil {
				return nil, err
			}
			b, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				return nil, err
			}
			_, err = fmt.Fprintln(r.out, string(b))
			return nil, err
		},
	)
}

func (r *runner) Stop() error {
	if r.cancel != nil {
		r.cancel()
	}
	return nil
}
