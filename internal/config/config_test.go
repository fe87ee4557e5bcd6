package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/techangelx/gradewiz/internal/grade"
)

// isolate points XDG_CONFIG_HOME and the working directory at a temp dir
// and clears GRADEWIZ_* env vars. Returns the temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	// Empty values are treated as unset by viper
	for _, key := range []string{"MAX_COMPONENTS", "ROUNDING", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv("GRADEWIZ_"+key, "")
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name        string
		xdgConfig   string
		wantContain string
	}{
		{
			name:        "with XDG_CONFIG_HOME set",
			xdgConfig:   "/custom/config",
			wantContain: "/custom/config/gradewiz/gradewiz.yml",
		},
		{
			name:        "without XDG_CONFIG_HOME",
			xdgConfig:   "",
			wantContain: ".config/gradewiz/gradewiz.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.xdgConfig != "" {
				if got != tt.wantContain {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.wantContain)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, tt.wantContain) {
				t.Errorf("GlobalPath() should end with %s, got %v", tt.wantContain, got)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "gradewiz.yml" {
		t.Errorf("ProjectPath() = %v, want gradewiz.yml", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true, want false when no config files exist")
	}

	if err := WriteProject(Default()); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
	_ = os.Remove(ProjectPath())

	if err := WriteGlobal(Default()); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when global config exists")
	}
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := &Config{
		MaxComponents: 8,
		Rounding:      "half-even",
		LogLevel:      "debug",
		LogFile:       "/tmp/gradewiz.log",
	}
	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{
		"max_components: 8",
		"rounding: half-even",
		"log_level: debug",
		"log_file: /tmp/gradewiz.log",
	} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxComponents != grade.DefaultMaxComponents {
		t.Errorf("Load() default MaxComponents = %d, want %d", cfg.MaxComponents, grade.DefaultMaxComponents)
	}
	if cfg.Rounding != "half-up" {
		t.Errorf("Load() default Rounding = %q, want half-up", cfg.Rounding)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() default LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	if err := WriteGlobal(&Config{MaxComponents: 6, Rounding: "half-even", LogLevel: "warn"}); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxComponents != 6 || cfg.Rounding != "half-even" || cfg.LogLevel != "warn" {
		t.Errorf("global config not applied: %+v", cfg)
	}

	// Project overrides global
	if err := WriteProject(&Config{MaxComponents: 7, Rounding: "half-even", LogLevel: "warn"}); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}
	cfg, err = Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxComponents != 7 {
		t.Errorf("project MaxComponents = %d, want 7", cfg.MaxComponents)
	}

	// Env overrides files
	t.Setenv("GRADEWIZ_MAX_COMPONENTS", "9")
	cfg, err = Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxComponents != 9 {
		t.Errorf("env MaxComponents = %d, want 9", cfg.MaxComponents)
	}

	// Changed flags override env; unchanged flags do not
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-components", 5, "")
	flags.String("rounding", "half-up", "")
	if err := flags.Parse([]string{"--max-components", "3"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cfg, err = Load(flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxComponents != 3 {
		t.Errorf("flag MaxComponents = %d, want 3", cfg.MaxComponents)
	}
	if cfg.Rounding != "half-even" {
		t.Errorf("unchanged flag overrode Rounding: got %q", cfg.Rounding)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)

	t.Setenv("GRADEWIZ_ROUNDING", "truncate")
	if _, err := Load(nil); err == nil {
		t.Error("Load() expected error for unknown rounding policy")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "defaults", config: Default(), wantErr: false},
		{name: "zero max", config: &Config{MaxComponents: 0, Rounding: "half-up"}, wantErr: true},
		{name: "negative max", config: &Config{MaxComponents: -2}, wantErr: true},
		{name: "bad rounding", config: &Config{MaxComponents: 5, Rounding: "up"}, wantErr: true},
		{name: "empty rounding", config: &Config{MaxComponents: 5}, wantErr: false},
		{name: "at limit", config: &Config{MaxComponents: MaxComponentsLimit}, wantErr: false},
		{name: "above limit", config: &Config{MaxComponents: MaxComponentsLimit + 1}, wantErr: true},
		{name: "huge max", config: &Config{MaxComponents: 5000}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	cfg := &Config{MaxComponents: 2, Rounding: "half-even"}

	s := cfg.NewSession()
	if s.MaxComponents() != 2 {
		t.Errorf("NewSession() MaxComponents = %d, want 2", s.MaxComponents())
	}
	if cfg.RoundingPolicy() != grade.RoundHalfEven {
		t.Errorf("RoundingPolicy() = %v, want half-even", cfg.RoundingPolicy())
	}
}
