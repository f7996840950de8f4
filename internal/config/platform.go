package config

import (
	"os"
	"runtime"
)

// PlatformProvider is the view of the host that layout lookup depends on.
// Tests substitute it to simulate other operating systems and directories.
type PlatformProvider interface {
	// GetOS returns runtime.GOOS or a stand-in for it
	GetOS() string
	GetEnv(key string) string
	UserHomeDir() (string, error)
	// Getwd returns the directory project layouts are searched from
	Getwd() (string, error)
	Stat(name string) (os.FileInfo, error)
}

// OSPlatform answers from the running process
type OSPlatform struct{}

func (OSPlatform) GetOS() string                         { return runtime.GOOS }
func (OSPlatform) GetEnv(key string) string              { return os.Getenv(key) }
func (OSPlatform) UserHomeDir() (string, error)          { return os.UserHomeDir() }
func (OSPlatform) Getwd() (string, error)                { return os.Getwd() }
func (OSPlatform) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// DefaultPlatform is used by the functions without a platform argument
var DefaultPlatform PlatformProvider = OSPlatform{}
