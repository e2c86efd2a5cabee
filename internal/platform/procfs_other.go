//go:build !linux

package platform

import (
	"errors"
	"runtime"
)

// DefaultProcMount is where the procfs backend would look for /proc.
const DefaultProcMount = "/proc"

func newProcfs(string) (Provider, error) {
	return nil, errors.New("procfs is not available on " + runtime.GOOS)
}
