package configs

import (
	"os"
	"strings"
)

const envInContainer = "IS_DOCKER"

// isInContainer only trusts the variable our own image sets: ENV IS_DOCKER=true.
func isInContainer() bool {
	return strings.ToLower(strings.TrimSpace(os.Getenv(envInContainer))) == "true"
}

// defaultBind is where the inspector listens unless told otherwise. Inside a
// container a loopback address can not be reached from the host.
func defaultBind() string {
	if isInContainer() {
		return "0.0.0.0:8080"
	}
	return "127.0.0.1:8080"
}
