package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPlatformProvider is a test double for PlatformProvider
type MockPlatformProvider struct {
	OS           string
	EnvVars      map[string]string
	HomeDirPath  string
	HomeDirError error
	WorkDir      string
	WorkDirError error
	// StatCalls records every path looked up
	StatCalls []string
}

func (m *MockPlatformProvider) GetOS() string {
	return m.OS
}

func (m *MockPlatformProvider) GetEnv(key string) string {
	if m.EnvVars == nil {
		return ""
	}
	return m.EnvVars[key]
}

func (m *MockPlatformProvider) UserHomeDir() (string, error) {
	if m.HomeDirError != nil {
		return "", m.HomeDirError
	}
	return m.HomeDirPath, nil
}

func (m *MockPlatformProvider) Getwd() (string, error) {
	if m.WorkDirError != nil {
		return "", m.WorkDirError
	}
	return m.WorkDir, nil
}

// Stat records the lookup and answers from the real file system
func (m *MockPlatformProvider) Stat(name string) (os.FileInfo, error) {
	m.StatCalls = append(m.StatCalls, name)
	return os.Stat(name)
}

func TestConfigDirAllPlatforms(t *testing.T) {
	home := filepath.Join("home", "test")
	tests := []struct {
		name     string
		platform *MockPlatformProvider
		want     string
	}{
		{
			name: "Windows with APPDATA",
			platform: &MockPlatformProvider{
				OS:      "windows",
				EnvVars: map[string]string{"APPDATA": filepath.Join("C:", "AppData")},
			},
			want: filepath.Join("C:", "AppData", "termgrid"),
		},
		{
			name:     "Windows without APPDATA",
			platform: &MockPlatformProvider{OS: "windows", HomeDirPath: home},
			want:     filepath.Join(home, ".termgrid"),
		},
		{
			name:     "macOS happy path",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirPath: home},
			want:     filepath.Join(home, "Library", "Application Support", "termgrid"),
		},
		{
			name:     "macOS home error",
			platform: &MockPlatformProvider{OS: "darwin", HomeDirError: errors.New("no home")},
			want:     "",
		},
		{
			name:     "Linux default",
			platform: &MockPlatformProvider{OS: "linux", HomeDirPath: home},
			want:     filepath.Join(home, ".config", "termgrid"),
		},
		{
			name: "Linux with XDG_CONFIG_HOME",
			platform: &MockPlatformProvider{
				OS:          "linux",
				EnvVars:     map[string]string{"XDG_CONFIG_HOME": filepath.Join("xdg")},
				HomeDirPath: home,
			},
			want: filepath.Join("xdg", "termgrid"),
		},
		{
			name:     "Linux home error",
			platform: &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home")},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirWithPlatform(tt.platform); got != tt.want {
				t.Errorf("ConfigDirWithPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalLayoutPathNoConfigDir(t *testing.T) {
	platform := &MockPlatformProvider{OS: "linux", HomeDirError: errors.New("no home")}
	if got := GlobalLayoutPath(platform); got != "" {
		t.Errorf("GlobalLayoutPath() = %q, want empty", got)
	}
}

func writeLayout(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("rows: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
}

func TestFindLayout(t *testing.T) {
	project := t.TempDir()
	home := t.TempDir()
	platform := &MockPlatformProvider{OS: "linux", HomeDirPath: home}
	global := filepath.Join(home, ".config", "termgrid", "layout.yaml")

	if got := FindLayoutWithPlatform(project, platform); got != "" {
		t.Errorf("FindLayout() with nothing = %q, want empty", got)
	}

	writeLayout(t, global)
	if got := FindLayoutWithPlatform(project, platform); got != global {
		t.Errorf("FindLayout() = %q, want global %q", got, global)
	}

	local := ProjectLayoutPath(project)
	writeLayout(t, local)
	if got := FindLayoutWithPlatform(project, platform); got != local {
		t.Errorf("FindLayout() = %q, want project %q", got, local)
	}

	if got := FindLayoutWithPlatform("", platform); got != global {
		t.Errorf("FindLayout(\"\") = %q, want global %q", got, global)
	}
}

func TestFindLayoutIgnoresDirectories(t *testing.T) {
	project := t.TempDir()
	if err := os.MkdirAll(ProjectLayoutPath(project), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	platform := &MockPlatformProvider{OS: "linux", HomeDirPath: t.TempDir()}
	if got := FindLayoutWithPlatform(project, platform); got != "" {
		t.Errorf("FindLayout() = %q, want empty", got)
	}
}

func TestFindLayoutUsesWorkingDir(t *testing.T) {
	wd := t.TempDir()
	platform := &MockPlatformProvider{OS: "linux", HomeDirPath: t.TempDir(), WorkDir: wd}

	local := ProjectLayoutPath(wd)
	writeLayout(t, local)
	if got := FindLayoutWithPlatform("", platform); got != local {
		t.Errorf("FindLayout(\"\") = %q, want working dir layout %q", got, local)
	}
	if len(platform.StatCalls) == 0 || platform.StatCalls[0] != local {
		t.Errorf("StatCalls = %q, want lookups through the platform", platform.StatCalls)
	}

	other := t.TempDir()
	if got := FindLayoutWithPlatform(other, platform); got != "" {
		t.Errorf("an explicit project dir should win over the working dir, got %q", got)
	}
}

func TestFindLayoutWorkingDirError(t *testing.T) {
	home := t.TempDir()
	platform := &MockPlatformProvider{
		OS:           "linux",
		HomeDirPath:  home,
		WorkDirError: errors.New("getwd: no such file or directory"),
	}
	global := filepath.Join(home, ".config", "termgrid", "layout.yaml")
	writeLayout(t, global)

	if got := FindLayoutWithPlatform("", platform); got != global {
		t.Errorf("FindLayout() = %q, want global %q", got, global)
	}
}
