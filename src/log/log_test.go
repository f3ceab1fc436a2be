package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/instance"
)

func TestNewUsesInstanceConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := configs.NewConfig()
	cfg.Debug = true
	cfg.Log = configs.Log{OutPutFolder: dir, SaveLastLog: true}
	inst := &instance.Instance{Config: cfg}
	ctx := context.WithValue(context.Background(), instance.Key, inst)

	logger := New(ctx)
	assert.Same(t, logger, inst.Logger)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	logger.Info("hello")
	b, err := os.ReadFile(filepath.Join(dir, lastLogName))
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=hello")
}

func TestNewWithoutInstance(t *testing.T) {
	logger := New(context.Background())
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}
