package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigWithBytes(t *testing.T) {
	cfg, err := NewConfigWithBytes([]byte(`
debug: true
input: ./page.html
script:
  engine: otto
  globals:
    count: 0
    user:
      name: ada
dispatch:
  - "#open=customopen"
  - selector: button
    type: click
    cancelable: true
    detail:
      n: 1
`))
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "./page.html", cfg.Input)
	assert.Equal(t, 256, cfg.Script.CacheSize)
	assert.Equal(t, map[string]any{"name": "ada"}, cfg.Script.Globals["user"])
	assert.Equal(t, []DispatchStep{
		{Selector: "#open", Type: "customopen"},
		{Selector: "button", Type: "click", Cancelable: true, Detail: map[string]any{"n": 1}},
	}, cfg.Dispatch)
	assert.Equal(t, DefaultReportTmpl, cfg.ReportTmpl)
	assert.NoError(t, cfg.Verify())
}

func TestVerify(t *testing.T) {
	cfg := NewConfig()
	assert.Error(t, cfg.Verify(), "input is required")

	cfg.Input = "page.html"
	assert.NoError(t, cfg.Verify())

	cfg.Script.Engine = "lua"
	assert.True(t, errors.Is(cfg.Verify(), ErrUnknownEngine))
	cfg.Script.Engine = "registry"

	cfg.Script.CacheSize = 0
	assert.Error(t, cfg.Verify())
	cfg.Script.CacheSize = 1

	cfg.RPC = RPC{Enable: true, Bind: "not an address"}
	assert.Error(t, cfg.Verify())

	var nilCfg *Config
	assert.Error(t, nilCfg.Verify())
}

func TestParseDispatchStep(t *testing.T) {
	step, err := ParseDispatchStep("div[data-x=1] = click")
	require.NoError(t, err)
	assert.Equal(t, DispatchStep{Selector: "div[data-x=1]", Type: "click"}, step)

	for _, bad := range []string{"click", "=click", "div="} {
		_, err := ParseDispatchStep(bad)
		assert.Error(t, err, bad)
	}

	steps, err := NewDispatchStepsWithStrings([]string{"a=b", "c=d"})
	require.NoError(t, err)
	assert.Len(t, steps, 2)
}

func TestMarshalRoundTripFile(t *testing.T) {
	cfg := NewConfig()
	_, err := cfg.GetFilePath()
	assert.Error(t, err)
	assert.Error(t, cfg.Marshal())

	cfg.File = filepath.Join(t.TempDir(), "config.yml")
	cfg.Input = "index.html"
	require.NoError(t, cfg.Marshal())

	loaded, err := NewConfigWithFile(cfg.File)
	require.NoError(t, err)
	assert.Equal(t, "index.html", loaded.Input)
	assert.Equal(t, cfg.File, loaded.File)

	_, err = NewConfigWithFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
	_ = os.Remove(cfg.File)
}

func TestDefaultBind(t *testing.T) {
	t.Setenv(envInContainer, "")
	assert.Equal(t, "127.0.0.1:8080", defaultBind())
	t.Setenv(envInContainer, " TRUE ")
	assert.Equal(t, "0.0.0.0:8080", defaultBind())
}

func TestNewConfigWithFileKeepsCause(t *testing.T) {
	_, err := NewConfigWithFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
