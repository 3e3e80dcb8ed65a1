// Package config provides configuration management for the winedition tool.
//
// This package handles loading configuration from multiple sources with proper
// precedence ordering:
//  1. Command-line flags (highest priority)
//  2. Environment variables (WINEDITION_ prefix)
//  3. Configuration file (YAML format)
//  4. Default values (lowest priority)
//
// Configuration File Format (YAML):
//
//	family: "Windows 11"           # pre-supplied OS family, skips the family selector
//	detector_path: "X:\\Deploy\\Tools\\oemkey.exe"
//	report_path: "X:\\Windows\\Temp\\oemreport.txt"
//	log_path: "X:\\Windows\\Temp\\winedition.log"
//	store_path: "X:\\Deploy\\variables.env"   # empty: process environment
//	skip_family: false
//	default_family: "Windows 11"
//	unknown_family_label: "Unknown"
//	variables:
//	  family: "osFamily"
//	  edition: "osEdition"
//	  auto: "isAutoEdition"
//	  key: "oemKey"
//	debug: false
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DebugEnabled is a global flag for debug logging, mirrored from Config.Debug
// during bootstrap so leaf packages can check it without carrying the config.
var DebugEnabled bool

const trueString = "true"

// Recognized file extensions for the paths the tool owns. The surrounding
// deployment tooling keys cleanup rules off these, so they are validated
// rather than silently accepted.
const (
	ReportExt = ".txt"
	LogExt    = ".log"
)

// VariableNames configures the deployment-environment variable names the
// outcome is persisted under.
type VariableNames struct {
	Family  string `yaml:"family"`
	Edition string `yaml:"edition"`
	Auto    string `yaml:"auto"`
	Key     string `yaml:"key"`
}

// Config holds all settings for one run.
type Config struct {
	// Family pre-supplies the OS family and suppresses the family selector.
	Family string `yaml:"family"`
	// DetectorPath is the external key-reading executable. Missing file
	// means detection is skipped, not an error.
	DetectorPath string `yaml:"detector_path"`
	// ReportPath is where the detector writes its report. Must end in .txt.
	ReportPath string `yaml:"report_path"`
	// LogPath is the run log file. Must end in .log.
	LogPath string `yaml:"log_path"`
	// StorePath is the variables file persisted into; empty selects the
	// process environment.
	StorePath string `yaml:"store_path"`
	// Testing suppresses persistence and logging side effects.
	Testing bool `yaml:"testing"`
	// SkipFamily disables the family selector without pre-supplying one.
	SkipFamily bool `yaml:"skip_family"`
	// DefaultFamily pre-selects a family entry in the selector.
	DefaultFamily string `yaml:"default_family"`
	// UnknownFamilyLabel is the display label of the unselected family
	// placeholder.
	UnknownFamilyLabel string `yaml:"unknown_family_label"`
	// Variables overrides the persisted variable names.
	Variables VariableNames `yaml:"variables"`
	Debug     bool          `yaml:"debug"`
}

// NewConfig creates a new configuration with values from environment variables.
func NewConfig() *Config {
	return &Config{
		Family:             os.Getenv("WINEDITION_FAMILY"),
		DetectorPath:       os.Getenv("WINEDITION_DETECTOR"),
		ReportPath:         os.Getenv("WINEDITION_REPORT"),
		LogPath:            os.Getenv("WINEDITION_LOG"),
		StorePath:          os.Getenv("WINEDITION_STORE"),
		Testing:            strings.ToLower(os.Getenv("WINEDITION_TESTING")) == trueString,
		SkipFamily:         strings.ToLower(os.Getenv("WINEDITION_SKIP_FAMILY")) == trueString,
		DefaultFamily:      os.Getenv("WINEDITION_DEFAULT_FAMILY"),
		UnknownFamilyLabel: os.Getenv("WINEDITION_UNKNOWN_FAMILY_LABEL"),
		Debug:              strings.ToLower(os.Getenv("WINEDITION_DEBUG")) == trueString,
	}
}

// MergeWithFile merges settings from a YAML config file into the config.
// Values already set from the environment win over file values.
func (c *Config) MergeWithFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Pointers distinguish unset from explicitly set boolean values.
	var fileConfig struct {
		Family             string        `yaml:"family"`
		DetectorPath       string        `yaml:"detector_path"`
		ReportPath         string        `yaml:"report_path"`
		LogPath            string        `yaml:"log_path"`
		StorePath          string        `yaml:"store_path"`
		Testing            *bool         `yaml:"testing"`
		SkipFamily         *bool         `yaml:"skip_family"`
		DefaultFamily      string        `yaml:"default_family"`
		UnknownFamilyLabel string        `yaml:"unknown_family_label"`
		Variables          VariableNames `yaml:"variables"`
		Debug              *bool         `yaml:"debug"`
	}

	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if c.Family == "" {
		c.Family = fileConfig.Family
	}
	if c.DetectorPath == "" {
		c.DetectorPath = fileConfig.DetectorPath
	}
	if c.ReportPath == "" {
		c.ReportPath = fileConfig.ReportPath
	}
	if c.LogPath == "" {
		c.LogPath = fileConfig.LogPath
	}
	if c.StorePath == "" {
		c.StorePath = fileConfig.StorePath
	}
	if !c.Testing && fileConfig.Testing != nil {
		c.Testing = *fileConfig.Testing
	}
	if !c.SkipFamily && fileConfig.SkipFamily != nil {
		c.SkipFamily = *fileConfig.SkipFamily
	}
	if c.DefaultFamily == "" {
		c.DefaultFamily = fileConfig.DefaultFamily
	}
	if c.UnknownFamilyLabel == "" {
		c.UnknownFamilyLabel = fileConfig.UnknownFamilyLabel
	}
	if c.Variables.Family == "" {
		c.Variables.Family = fileConfig.Variables.Family
	}
	if c.Variables.Edition == "" {
		c.Variables.Edition = fileConfig.Variables.Edition
	}
	if c.Variables.Auto == "" {
		c.Variables.Auto = fileConfig.Variables.Auto
	}
	if c.Variables.Key == "" {
		c.Variables.Key = fileConfig.Variables.Key
	}
	if !c.Debug && fileConfig.Debug != nil {
		c.Debug = *fileConfig.Debug
	}

	return nil
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.ReportPath == "" {
		// Each run owns its report file; a per-run name keeps a crashed
		// earlier run's leftover report from being parsed as this run's.
		c.ReportPath = filepath.Join(os.TempDir(), "oemreport-"+uuid.NewString()+ReportExt)
	}

	if c.LogPath == "" {
		c.LogPath = filepath.Join(os.TempDir(), "winedition"+LogExt)
	}

	if c.UnknownFamilyLabel == "" {
		c.UnknownFamilyLabel = "Unknown"
	}

	if c.Variables.Family == "" {
		c.Variables.Family = "osFamily"
	}
	if c.Variables.Edition == "" {
		c.Variables.Edition = "osEdition"
	}
	if c.Variables.Auto == "" {
		c.Variables.Auto = "isAutoEdition"
	}
	if c.Variables.Key == "" {
		c.Variables.Key = "oemKey"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ReportPath != "" && !strings.EqualFold(filepath.Ext(c.ReportPath), ReportExt) {
		return fmt.Errorf("report path %q must end in %s", c.ReportPath, ReportExt)
	}

	if c.LogPath != "" && !strings.EqualFold(filepath.Ext(c.LogPath), LogExt) {
		return fmt.Errorf("log path %q must end in %s", c.LogPath, LogExt)
	}

	return nil
}
