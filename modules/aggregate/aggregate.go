package aggregate

import (
	"context"
	"errors"

	"github.com/chebyrash/promise"
)

type Aggregate struct {
	ctx     context.Context
	cancel  context.CancelFunc
	plugins []Plugin
	started int
}

var _ Plugin = &Aggregate{}

func New(plugins []Plugin) *Aggregate {
	ctx, cancel := context.WithCancel(context.Background())
	return &Aggregate{
		ctx:     ctx,
		cancel:  cancel,
		plugins: plugins,
	}
}

// Run initialises and starts every plugin, waits for all of them to finish
// and stops them again. Plugins that were initialised are stopped even when a
// later step fails.
func (a *Aggregate) Run() error {
	if err := a.Init(); err != nil {
		return errors.Join(err, a.Stop())
	}

	_, err := a.Start().Await(a.ctx)
	return errors.Join(err, a.Stop())
}

// Init implements Plugin.
func (a *Aggregate) Init() error {
	for _, p := range a.plugins {
		if err := p.Init(); err != nil {
			return err
		}
		a.started++
	}
	return nil
}

// Start implements Plugin.
func (a *Aggregate) Start() *promise.Promise[any] {
	promises := make([]*promise.Promise[any], len(a.plugins))
	for i, p := range a.plugins {
		promises[i] = p.Start()
	}
	return promise.Then(
		promise.All(a.ctx, promises...),
		a.ctx,
		func([]any) (any, error) {
			return nil, nil
		},
	)
}

// Stop implements Plugin. Plugins are stopped in reverse order of
// initialisation.
func (a *Aggregate) Stop() error {
	var errs []error
	for i := a.started - 1; i >= 0; i-- {
		if err := a.plugins[i].Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	a.started = 0
	a.cancel()
	return errors.Join(errs...)
}
