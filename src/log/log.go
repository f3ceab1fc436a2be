package log

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/onevent-go/onevent/src/instance"
)

const lastLogName = "onevent-last.log"

// New builds the process logger from the instance config and stores it on the instance.
func New(ctx context.Context) *logrus.Logger {
	inst := instance.GetInstance(ctx)
	level := logrus.InfoLevel
	writers := []io.Writer{os.Stderr}
	if inst != nil && inst.Config != nil {
		if inst.Config.Debug {
			level = logrus.DebugLevel
		}
		if folder := inst.Config.Log.OutPutFolder; folder != "" && inst.Config.Log.SaveLastLog {
			if f, err := os.Create(filepath.Join(folder, lastLogName)); err == nil {
				writers = append(writers, f)
			} else {
				logrus.WithError(err).Warn("failed to create log file")
			}
		}
	}

	logger := &logrus.Logger{
		Out: io.MultiWriter(writers...),
		Formatter: &logrus.TextFormatter{
			DisableColors:   true,
			DisableQuote:    true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	if inst != nil {
		inst.Logger = logger
	}
	return logger
}
