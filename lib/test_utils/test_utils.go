package test_utils

import (
	"context"
	"coreum-fun/modules/aggregate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestingT interface {
	require.TestingT
	Cleanup(func())
}

// RunPlugin takes plugin through Init and Start and waits for Start to
// settle. The plugin is stopped when the test completes.
func RunPlugin(t TestingT, plugin aggregate.Plugin) any {
	require.NoError(t, plugin.Init())
	t.Cleanup(func() {
		assert.NoError(t, plugin.Stop())
	})
	res, err := plugin.Start().Await(context.Background())
	require.NoError(t, err)
	if res == nil {
		return nil
	}
	return *res
}
