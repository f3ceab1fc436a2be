package consts

import (
	"fmt"
	"os"
	"runtime"
)

const (
	AppName = "onevent"
	// Version of the attribute binder, reported next to the build version.
	Version = "0.1.0"
)

// Attribute grammar: on-<event>="<expr>" and on-<event>:map="<type>".
const (
	AttrPrefix    = "on-"
	MapSuffix     = ":map"
	EventVarName  = "e"
	ActionEnable  = "activate"
	ActionDisable = "deactivate"
)

type Info struct {
	AppName       string `json:"app_name"`
	AppVersion    string `json:"app_version"`
	BinderVersion string `json:"binder_version"`
	BuildTime     string `json:"build_time"`
	GitHash       string `json:"git_hash"`
	Pid           int    `json:"pid"`
	Platform      string `json:"platform"`
	GoVersion     string `json:"go_version"`
}

var (
	BuildTime  string
	AppVersion string
	GitHash    string
	AppInfo    = Info{
		AppName:       AppName,
		AppVersion:    AppVersion,
		BinderVersion: Version,
		BuildTime:     BuildTime,
		GitHash:       GitHash,
		Pid:           os.Getpid(),
		Platform:      fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		GoVersion:     runtime.Version(),
	}
)
