package instance

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/onevent-go/onevent/src/binder"
	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/metrics"
	"github.com/onevent-go/onevent/src/script"
)

type key int

const (
	Key key = 114514
)

// Module is a long running part of the process.
type Module interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
}

type Instance struct {
	WaitGroup sync.WaitGroup
	// Lock serializes everything that runs handlers: the script runtime
	// expects one caller at a time.
	Lock      sync.Mutex
	Config    *configs.Config
	Logger    *logrus.Logger
	Document  *dom.Document
	Evaluator script.Evaluator
	Binder    *binder.Binder
	Metrics   *metrics.Collector
	Server    Module
}

func GetInstance(ctx context.Context) *Instance {
	if s, ok := ctx.Value(Key).(*Instance); ok {
		return s
	}
	return nil
}
