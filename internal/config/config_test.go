package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"WINEDITION_FAMILY", "WINEDITION_DETECTOR", "WINEDITION_REPORT",
		"WINEDITION_LOG", "WINEDITION_STORE", "WINEDITION_TESTING",
		"WINEDITION_SKIP_FAMILY", "WINEDITION_DEFAULT_FAMILY",
		"WINEDITION_UNKNOWN_FAMILY_LABEL", "WINEDITION_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestSetDefaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()
	cfg.SetDefaults()

	assert.True(t, strings.HasSuffix(cfg.ReportPath, ReportExt))
	assert.True(t, strings.HasSuffix(cfg.LogPath, LogExt))
	assert.Equal(t, "Unknown", cfg.UnknownFamilyLabel)
	assert.Equal(t, VariableNames{
		Family:  "osFamily",
		Edition: "osEdition",
		Auto:    "isAutoEdition",
		Key:     "oemKey",
	}, cfg.Variables)

	// Each run gets its own report file.
	other := NewConfig()
	other.SetDefaults()
	assert.NotEqual(t, cfg.ReportPath, other.ReportPath)
}

func TestSetDefaultsKeepsExplicitValues(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()
	cfg.ReportPath = "/deploy/report.txt"
	cfg.Variables.Edition = "OSDEdition"
	cfg.SetDefaults()

	assert.Equal(t, "/deploy/report.txt", cfg.ReportPath)
	assert.Equal(t, "OSDEdition", cfg.Variables.Edition)
	assert.Equal(t, "osFamily", cfg.Variables.Family)
}

func TestValidateExtensions(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		log     string
		wantErr bool
	}{
		{name: "valid", report: "/tmp/r.txt", log: "/tmp/l.log", wantErr: false},
		{name: "uppercase extensions accepted", report: "/tmp/R.TXT", log: "/tmp/L.LOG", wantErr: false},
		{name: "bad report extension", report: "/tmp/r.xml", log: "/tmp/l.log", wantErr: true},
		{name: "bad log extension", report: "/tmp/r.txt", log: "/tmp/l.txt", wantErr: true},
		{name: "empty paths pass, defaults fill them later", report: "", log: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ReportPath: tt.report, LogPath: tt.log}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WINEDITION_FAMILY", "Windows 11")
	t.Setenv("WINEDITION_DETECTOR", "/deploy/oemkey.exe")
	t.Setenv("WINEDITION_TESTING", "TRUE")
	t.Setenv("WINEDITION_DEBUG", "true")

	cfg := NewConfig()

	assert.Equal(t, "Windows 11", cfg.Family)
	assert.Equal(t, "/deploy/oemkey.exe", cfg.DetectorPath)
	assert.True(t, cfg.Testing)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.SkipFamily)
}

func TestMergeWithFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
family: "Windows 10"
detector_path: "/deploy/oemkey.exe"
report_path: "/deploy/report.txt"
skip_family: true
variables:
  edition: "OSDEdition"
  key: "OSDProductKey"
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.MergeWithFile(path))

	assert.Equal(t, "Windows 10", cfg.Family)
	assert.Equal(t, "/deploy/oemkey.exe", cfg.DetectorPath)
	assert.Equal(t, "/deploy/report.txt", cfg.ReportPath)
	assert.True(t, cfg.SkipFamily)
	assert.Equal(t, "OSDEdition", cfg.Variables.Edition)
	assert.Equal(t, "OSDProductKey", cfg.Variables.Key)
	assert.True(t, cfg.Debug)
}

func TestMergeWithFileEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("WINEDITION_FAMILY", "Windows 11")

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`family: "Windows 10"`), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.MergeWithFile(path))

	assert.Equal(t, "Windows 11", cfg.Family)
}

func TestMergeWithFileErrors(t *testing.T) {
	cfg := NewConfig()

	assert.NoError(t, cfg.MergeWithFile(""), "empty path is a no-op")
	assert.Error(t, cfg.MergeWithFile(filepath.Join(t.TempDir(), "absent.yml")))

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("family: [unclosed"), 0o600))
	assert.Error(t, cfg.MergeWithFile(bad))
}
