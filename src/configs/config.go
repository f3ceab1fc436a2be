package configs

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/onevent-go/onevent/src/script"
)

var ErrUnknownEngine = errors.New("unknown script engine")

// RPC info.
type RPC struct {
	Enable bool   `yaml:"enable"`
	Bind   string `yaml:"bind"`
}

var defaultRPC = RPC{
	Enable: false,
	Bind:   defaultBind(),
}

func (r *RPC) verify() error {
	if r == nil {
		return nil
	}
	if !r.Enable {
		return nil
	}
	if _, err := net.ResolveTCPAddr("tcp", r.Bind); err != nil {
		return err
	}
	return nil
}

// Script selects how handler attributes are evaluated.
type Script struct {
	Engine    string         `yaml:"engine"`
	CacheSize int            `yaml:"cache_size"`
	Globals   map[string]any `yaml:"globals"`
}

type Log struct {
	OutPutFolder string `yaml:"out_put_folder"`
	SaveLastLog  bool   `yaml:"save_last_log"`
}

// DispatchStep fires one event on every element matching Selector.
type DispatchStep struct {
	Selector   string `yaml:"selector"`
	Type       string `yaml:"type"`
	Cancelable bool   `yaml:"cancelable,omitempty"`
	Detail     any    `yaml:"detail,omitempty"`
}

type dispatchStepAlias DispatchStep

// allow both "selector=type" and DispatchStep format in config
func (d *DispatchStep) UnmarshalYAML(unmarshal func(any) error) error {
	var alias dispatchStepAlias
	if err := unmarshal(&alias); err != nil {
		var s string
		if err = unmarshal(&s); err != nil {
			return err
		}
		step, err := ParseDispatchStep(s)
		if err != nil {
			return err
		}
		*d = step
		return nil
	}
	*d = DispatchStep(alias)
	return nil
}

// ParseDispatchStep parses "selector=type".
func ParseDispatchStep(s string) (DispatchStep, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return DispatchStep{}, fmt.Errorf(`invalid dispatch step %q, want "selector=type"`, s)
	}
	return DispatchStep{
		Selector: strings.TrimSpace(s[:i]),
		Type:     strings.TrimSpace(s[i+1:]),
	}, nil
}

func NewDispatchStepsWithStrings(strs []string) ([]DispatchStep, error) {
	steps := make([]DispatchStep, 0, len(strs))
	for _, s := range strs {
		step, err := ParseDispatchStep(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Config content all config info.
type Config struct {
	File       string         `yaml:"-"`
	RPC        RPC            `yaml:"rpc"`
	Debug      bool           `yaml:"debug"`
	Input      string         `yaml:"input"`
	Script     Script         `yaml:"script"`
	Log        Log            `yaml:"log"`
	Dispatch   []DispatchStep `yaml:"dispatch"`
	ReportTmpl string         `yaml:"report_tmpl"`
}

var config *Config

func SetCurrentConfig(cfg *Config) {
	config = cfg
}

func GetCurrentConfig() *Config {
	return config
}

const DefaultReportTmpl = `{{ range . -}}
{{ .Tag | lower }}{{ with .ID }}#{{ . }}{{ end }} [{{ .Control | trunc 8 }}]
{{- range .Bindings }}
  on-{{ .Event }}{{ if ne .Event .Type }} -> {{ .Type }}{{ end }}: {{ .Source | quote }}
{{- end }}
{{ end -}}
`

var defaultConfig = Config{
	RPC:   defaultRPC,
	Debug: false,
	Input: "",
	Script: Script{
		Engine:    script.EngineOtto,
		CacheSize: script.DefaultCacheSize,
	},
	Log: Log{
		OutPutFolder: "",
		SaveLastLog:  false,
	},
	Dispatch:   []DispatchStep{},
	ReportTmpl: DefaultReportTmpl,
}

func NewConfig() *Config {
	config := defaultConfig
	config.Dispatch = []DispatchStep{}
	return &config
}

// Verify will return an error when this config has problem.
func (c *Config) Verify() error {
	if c == nil {
		return fmt.Errorf("config is null")
	}
	if err := c.RPC.verify(); err != nil {
		return err
	}
	switch c.Script.Engine {
	case script.EngineOtto, script.EngineRegistry:
	default:
		return fmt.Errorf("%q: %w", c.Script.Engine, ErrUnknownEngine)
	}
	if c.Script.CacheSize <= 0 {
		return fmt.Errorf("the script cache size can not <= 0")
	}
	if c.Input == "" {
		return fmt.Errorf("no input document is set")
	}
	for _, step := range c.Dispatch {
		if step.Selector == "" || step.Type == "" {
			return fmt.Errorf("dispatch step %+v needs both selector and type", step)
		}
	}
	return nil
}

func NewConfigWithBytes(b []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(b, &config); err != nil {
		return nil, err
	}
	for k, v := range config.Script.Globals {
		config.Script.Globals[k] = normalize(v)
	}
	for i := range config.Dispatch {
		config.Dispatch[i].Detail = normalize(config.Dispatch[i].Detail)
	}
	return &config, nil
}

// normalize turns the map[interface{}]interface{} values yaml.v2 produces
// into map[string]any, so scripts can read them as plain objects.
func normalize(v any) any {
	switch v := v.(type) {
	case map[any]any:
		ret := make(map[string]any, len(v))
		for k, val := range v {
			ret[fmt.Sprint(k)] = normalize(val)
		}
		return ret
	case []any:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	default:
		return v
	}
}

func NewConfigWithFile(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("can`t open file %s: %w", file, err)
	}
	config, err := NewConfigWithBytes(b)
	if err != nil {
		return nil, err
	}
	config.File = file
	return config, nil
}

func (c *Config) Marshal() error {
	if c.File == "" {
		return errors.New("config path not set")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.File, b, 0o644)
}

func (c Config) GetFilePath() (string, error) {
	if c.File == "" {
		return "", errors.New("config path not set")
	}
	return c.File, nil
}
