package config_test

import (
	"coreum-fun/lib/test_utils"
	"coreum-fun/modules/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic(t *testing.T) {
	type conf struct {
		A uint
		B string
	}
	dir := t.TempDir()
	c := config.New(conf{1, "hi"}, &dir)
	test_utils.RunPlugin(t, c)
	assert.True(t, c.Loaded())
	assert.Equal(t, conf{1, "hi"}, c.Get())
	assert.FileExists(t, filepath.Join(dir, "config", "conf.json"))
}

func TestClientConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	c := config.NewClientConfig(&dir)
	require.NoError(t, c.Init())

	b, err := os.ReadFile(c.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"RequestTimeout": "10s"`)
	assert.Equal(t, 10*time.Second, c.Get().RequestTimeout.Std())
}

func TestClientConfigReload(t *testing.T) {
	dir := t.TempDir()
	c := config.NewClientConfig(&dir)
	require.NoError(t, c.Init())
	require.NoError(t, c.Update(func(cc *config.ClientConfig) {
		cc.LcdURL = "https://full-node.testnet-1.coreum.dev:1317"
		cc.RequestTimeout = config.Duration(3 * time.Second)
	}))

	reloaded := config.NewClientConfig(&dir)
	require.NoError(t, reloaded.Init())
	assert.Equal(t, "https://full-node.testnet-1.coreum.dev:1317", reloaded.Get().LcdURL)
	assert.Equal(t, 3*time.Second, reloaded.Get().RequestTimeout.Std())
}

func TestClientConfigValidation(t *testing.T) {
	dir := t.TempDir()
	c := config.NewClientConfig(&dir)
	require.NoError(t, c.Init())

	err := c.Update(func(cc *config.ClientConfig) {
		cc.ContractAddress = ""
	})
	assert.Error(t, err)
	assert.Equal(t, "core1lottery", c.Get().ContractAddress)

	err = c.Update(func(cc *config.ClientConfig) {
		cc.LogLevel = "loud"
	})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(c.FilePath(), []byte(`{"LcdURL":"not a url","ContractAddress":"x","RequestTimeout":"1s"}`), 0644))
	assert.Error(t, config.NewClientConfig(&dir).Init())

	require.NoError(t, os.WriteFile(c.FilePath(), []byte(`{"RequestTimeout":10}`), 0644))
	assert.Error(t, config.NewClientConfig(&dir).Init())
}
