package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lthibault/jitterbug"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/onevent-go/onevent/src/binder"
	"github.com/onevent-go/onevent/src/cmd/onevent/internal/flag"
	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/dom"
	"github.com/onevent-go/onevent/src/instance"
	"github.com/onevent-go/onevent/src/log"
	"github.com/onevent-go/onevent/src/metrics"
	"github.com/onevent-go/onevent/src/pkg/events"
	"github.com/onevent-go/onevent/src/pkg/utils"
	"github.com/onevent-go/onevent/src/report"
	"github.com/onevent-go/onevent/src/script"
	"github.com/onevent-go/onevent/src/servers"
)

func getConfig() (*configs.Config, error) {
	var config *configs.Config
	if *flag.Conf != "" {
		c, err := configs.NewConfigWithFile(*flag.Conf)
		if err != nil {
			return nil, err
		}
		config = c
	} else {
		c, err := flag.GenConfigFromFlags()
		if err != nil {
			return nil, err
		}
		config = c
	}
	if config.Input == "" {
		// if no document is given, try the config.yml file besides the executable file.
		config, err := getConfigBesidesExecutable()
		if err == nil {
			return config, config.Verify()
		}
	}
	return config, config.Verify()
}

func getConfigBesidesExecutable() (*configs.Config, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(filepath.Dir(exePath), "config.yml")
	return configs.NewConfigWithFile(configPath)
}

func newEvaluator(config *configs.Config, logger *logrus.Logger) (script.Evaluator, error) {
	switch config.Script.Engine {
	case script.EngineRegistry:
		r := builtins(logger)
		logger.Debugf("registry handlers: %v", r.Names())
		return r, nil
	default:
		o := script.NewOttoEvaluator(config.Script.CacheSize)
		for name, value := range config.Script.Globals {
			if err := o.Set(name, value); err != nil {
				return nil, fmt.Errorf("failed to set global %s: %w", name, err)
			}
		}
		return o, nil
	}
}

// builtins is what markup can call when scripts are disabled.
func builtins(logger *logrus.Logger) *script.Registry {
	r := script.NewRegistry()
	r.Register("log", func(this events.Target, e *events.Event) (any, error) {
		fields := logrus.Fields{"event": e.Type}
		if el, ok := this.(*dom.Element); ok {
			fields["tag"] = el.TagName()
			fields["id"] = el.ID()
		}
		if e.Detail != nil {
			fields["detail"] = e.Detail
		}
		logger.WithFields(fields).Info("event fired")
		return nil, nil
	})
	r.Register("prevent", func(_ events.Target, e *events.Event) (any, error) {
		e.PreventDefault()
		return false, nil
	})
	r.Register("noop", func(events.Target, *events.Event) (any, error) {
		return nil, nil
	})
	return r
}

func dispatch(ctx context.Context, steps []configs.DispatchStep) {
	inst := instance.GetInstance(ctx)
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	for _, step := range steps {
		elements, err := inst.Document.QuerySelectorAll(step.Selector)
		if err != nil {
			inst.Logger.WithError(err).WithField("selector", step.Selector).Error("invalid selector")
			continue
		}
		if len(elements) == 0 {
			inst.Logger.WithField("selector", step.Selector).Warn("no element matched")
			continue
		}
		for _, el := range elements {
			evt := events.NewEvent(events.EventType(step.Type), step.Detail)
			evt.Cancelable = step.Cancelable
			notCanceled := el.DispatchEvent(evt)
			inst.Logger.WithFields(logrus.Fields{
				"selector":     step.Selector,
				"type":         step.Type,
				"tag":          el.TagName(),
				"id":           el.ID(),
				"not_canceled": notCanceled,
			}).Info("event dispatched")
		}
	}
}

// printBindings logs how many listeners each bound element holds.
func printBindings(ctx context.Context) {
	inst := instance.GetInstance(ctx)
	inst.Lock.Lock()
	defer inst.Lock.Unlock()
	listeners := 0
	for _, c := range inst.Binder.Controls() {
		el, ok := c.Target().(*dom.Element)
		if !ok {
			continue
		}
		types := el.ListenerTypes()
		listeners += len(types)
		if len(types) > 0 {
			inst.Logger.WithFields(logrus.Fields{
				"control": c.ID,
				"tag":     el.TagName(),
				"id":      el.ID(),
			}).Debugf("listening %v", types)
		}
	}
	inst.Logger.Debugf("%d controls, %d active listeners", len(inst.Binder.Controls()), listeners)
}

func main() {
	config, err := getConfig()
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}

	configs.SetCurrentConfig(config)

	inst := new(instance.Instance)
	inst.Config = config
	ctx := context.WithValue(context.Background(), instance.Key, inst)

	logger := log.New(ctx)
	logger.Infof("%s Version: %s (binder %s)", consts.AppName, consts.AppVersion, binder.Version())
	if config.File != "" {
		logger.Debugf("config path: %s.", config.File)
		logger.Debugf("other flags have been ignored.")
	} else {
		logger.Debugf("config file is not used.")
		logger.Debugf("flag: %s used.", os.Args)
	}
	logger.Debugf("%+v", consts.AppInfo)
	logger.Debugf("%+v", inst.Config)

	doc, err := utils.LoadDocument(config.Input)
	if err != nil {
		logger.WithError(err).Fatalf("failed to load %s", config.Input)
	}
	doc.ErrorHandler = func(event *events.Event, err error) {
		logger.WithError(err).WithField("event", event.Type).Error("uncaught error in event handler")
	}
	inst.Document = doc

	if inst.Evaluator, err = newEvaluator(config, logger); err != nil {
		logger.WithError(err).Fatal("failed to init script engine")
	}

	inst.Metrics = metrics.NewCollector()
	if err = inst.Metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatalf("failed to init metrics collector, error: %s", err)
	}

	inst.Binder = binder.New(inst.Evaluator,
		binder.WithObserver(inst.Metrics),
		binder.WithLogger(logger),
	)
	inst.Lock.Lock()
	inst.Binder.AutoInit(doc)
	doc.Load()
	inst.Lock.Unlock()
	logger.Infof("%d elements bound", len(inst.Binder.Controls()))

	dispatch(ctx, config.Dispatch)

	if config.ReportTmpl != "" {
		inst.Lock.Lock()
		entries := report.Collect(doc, inst.Binder)
		inst.Lock.Unlock()
		if err = report.Render(os.Stdout, config.ReportTmpl, entries); err != nil {
			logger.WithError(err).Error("failed to render report")
		}
	}

	if !inst.Config.RPC.Enable {
		return
	}
	if err = servers.NewServer(ctx).Start(ctx); err != nil {
		logger.WithError(err).Fatalf("failed to init server")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		inst.Server.Close(ctx)
	}()

	if inst.Config.Debug {
		go func() {
			ticker := jitterbug.New(time.Second*30, &jitterbug.Norm{Stdev: time.Second * 3})
			defer ticker.Stop()
			for range ticker.C {
				printBindings(ctx)
			}
		}()
	}
	inst.WaitGroup.Wait()
	logger.Info("Bye~")
}
