package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"screenlight/internal/config"
)

func executeConfig(t *testing.T) string {
	t.Helper()
	configCmd := newConfigCmd()
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	configCmd.SetArgs(nil)
	if err := configCmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return buf.String()
}

func TestConfigCommand_Defaults(t *testing.T) {
	isolateConfig(t)

	out := executeConfig(t)

	if !strings.Contains(out, "# user config: ") || !strings.Contains(out, "(not found)") {
		t.Errorf("Expected the config sources as comments. Got: %q", out)
	}

	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Output is not YAML: %v", err)
	}
	if cfg.Light.Temperature == nil || *cfg.Light.Temperature != 1800 {
		t.Errorf("Expected the default temperature, got %v", cfg.Light.Temperature)
	}
	if cfg.Controls.TemperatureStep != config.DefaultTemperatureStep {
		t.Errorf("Expected the default step, got %d", cfg.Controls.TemperatureStep)
	}
}

func TestConfigCommand_ProjectFile(t *testing.T) {
	_, project := isolateConfig(t)
	writeConfigFile(t, filepath.Join(project, ".screenlight"), "display:\n  mouse: false\n  rowUnits: 20\n")

	out := executeConfig(t)

	if !strings.Contains(out, "(loaded)") {
		t.Errorf("Expected the project file to be reported as loaded. Got: %q", out)
	}
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Output is not YAML: %v", err)
	}
	if config.Bool(cfg.Display.Mouse) {
		t.Error("Expected mouse: false from the project file")
	}
	if cfg.Display.RowUnits != 20 {
		t.Errorf("Expected rowUnits 20, got %v", cfg.Display.RowUnits)
	}
}
