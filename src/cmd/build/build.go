package build

import (
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

const usage = "usage: go run build.go [dev|release|test|generate]"

// RunCmd dispatches the build sub-command in os.Args and returns the exit code.
func RunCmd() int {
	if len(os.Args) < 2 {
		log.Error(usage)
		return 1
	}
	var err error
	switch os.Args[1] {
	case "dev":
		err = BuildGoBinary(true)
	case "release":
		err = BuildGoBinary(false)
	case "test":
		err = goTest()
	case "generate":
		err = run("go", "generate", "./...")
	default:
		log.Errorf("unknown command %s, %s", os.Args[1], usage)
		return 1
	}
	if err != nil {
		log.WithError(err).Errorf("%s failed", os.Args[1])
		return 1
	}
	return 0
}

func goTest() error {
	return run("go", "test", "-race", "-coverprofile=coverage.txt", "-covermode=atomic", "./src/...")
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Print(cmd.String())
	return cmd.Run()
}
