package build

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"text/template"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/onevent-go/onevent/src/consts"
)

const constsPath = "github.com/onevent-go/onevent/src/consts"

var ldFlagsTmpl = template.Must(template.New("ldFlags").Parse(
	"{{.DebugBuildFlags}} " +
		"-X {{.ConstsPath}}.BuildTime={{.Now}} " +
		"-X {{.ConstsPath}}.AppVersion={{.AppVersion}} " +
		"-X {{.ConstsPath}}.GitHash={{.GitHash}}"))

// target is the platform a binary is built for.
type target struct {
	OS   string
	Arch string
	Dev  bool
}

// newTarget reads PLATFORM and ARCH, falling back to the host.
func newTarget(isDev bool) target {
	t := target{OS: os.Getenv("PLATFORM"), Arch: os.Getenv("ARCH"), Dev: isDev}
	if t.OS == "" {
		t.OS = runtime.GOOS
	}
	if t.Arch == "" {
		t.Arch = runtime.GOARCH
	}
	return t
}

func (t target) tags() string {
	if t.Dev {
		return "dev"
	}
	return "release"
}

func (t target) gcFlags() string {
	if t.Dev {
		return "all=-N -l"
	}
	return ""
}

// binaryName carries the binder version, so binaries of different binder
// releases never overwrite each other in bin/.
func (t target) binaryName() string {
	name := fmt.Sprintf("%s-%s-%s-%s", consts.AppName, consts.Version, t.OS, t.Arch)
	if t.OS == "windows" {
		name += ".exe"
	}
	return name
}

// ldFlags strips symbols for release builds and injects the build info into
// src/consts. appVersion falls back to the binder version outside a git checkout.
func (t target) ldFlags(now time.Time, appVersion, gitHash string) (string, error) {
	debugBuildFlags := " -s -w "
	if t.Dev {
		debugBuildFlags = ""
	}
	if appVersion == "" || appVersion == "unknown" {
		appVersion = "v" + consts.Version
	}
	var buf bytes.Buffer
	if err := ldFlagsTmpl.Execute(&buf, map[string]string{
		"DebugBuildFlags": debugBuildFlags,
		"ConstsPath":      constsPath,
		"Now":             fmt.Sprintf("%d", now.Unix()),
		"AppVersion":      appVersion,
		"GitHash":         gitHash,
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func BuildGoBinary(isDev bool) error {
	t := newTarget(isDev)
	fmt.Printf("building %s %s (Platform: %s, Arch: %s, GoVersion: %s, Tags: %s)\n",
		consts.AppName, consts.Version, t.OS, t.Arch, runtime.Version(), t.tags())

	ldflags, err := t.ldFlags(time.Now(), getGitTagString(), getGitHash())
	if err != nil {
		return err
	}

	cmd := exec.Command(
		"go", "build",
		"-tags", t.tags(),
		`-gcflags=`+t.gcFlags(),
		"-o", "bin/"+t.binaryName(),
		"-ldflags="+ldflags,
		"./src/cmd/onevent",
	)
	cmd.Env = append(
		os.Environ(),
		"GOOS="+t.OS,
		"GOARCH="+t.Arch,
		"CGO_ENABLED=0",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Print(cmd.String())
	return cmd.Run()
}

func gitOutput(args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func getGitHash() string {
	return gitOutput("rev-parse", "HEAD")
}

func getGitTagString() string {
	return gitOutput("describe", "--tags", "--always")
}
