package flag

import (
	"os"
	"strconv"

	"github.com/alecthomas/kingpin"

	"github.com/onevent-go/onevent/src/configs"
	"github.com/onevent-go/onevent/src/consts"
	"github.com/onevent-go/onevent/src/script"
)

var (
	app = kingpin.New(consts.AppName, "Bind on-* attributes of an HTML document to its elements and fire events at them.")

	Debug      = app.Flag("debug", "Enable debug mode.").Default("false").Bool()
	Conf       = app.Flag("config", "Config file.").Short('c').Default("").String()
	Input      = app.Flag("input", "HTML document, a file path or an http(s) url.").Short('i').Default("").String()
	Engine     = app.Flag("engine", "Script engine for handler attributes.").Default(script.EngineOtto).Enum(script.EngineOtto, script.EngineRegistry)
	CacheSize  = app.Flag("cache-size", "How many compiled handlers to keep.").Default(strconv.Itoa(script.DefaultCacheSize)).Int()
	Globals    = app.Flag("global", "Script global, as name=value. Repeatable.").Short('g').StringMap()
	Dispatch   = app.Flag("dispatch", `Event to fire after load, as "selector=type". Repeatable.`).Short('d').Strings()
	ReportTmpl = app.Flag("report", "Report template.").Default(configs.DefaultReportTmpl).String()
	Serve      = app.Flag("serve", "Keep running and serve the inspector api.").Default("false").Bool()
	Bind       = app.Flag("bind", "Inspector api address.").Short('b').Default(configs.NewConfig().RPC.Bind).String()
)

func init() {
	app.Version(consts.AppVersion)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func GenConfigFromFlags() (*configs.Config, error) {
	cfg := configs.NewConfig()
	cfg.RPC = configs.RPC{
		Enable: *Serve,
		Bind:   *Bind,
	}
	cfg.Debug = *Debug
	cfg.Input = *Input
	cfg.Script.Engine = *Engine
	cfg.Script.CacheSize = *CacheSize
	cfg.Script.Globals = make(map[string]any, len(*Globals))
	for k, v := range *Globals {
		cfg.Script.Globals[k] = v
	}
	steps, err := configs.NewDispatchStepsWithStrings(*Dispatch)
	if err != nil {
		return nil, err
	}
	cfg.Dispatch = steps
	cfg.ReportTmpl = *ReportTmpl
	return cfg, nil
}
