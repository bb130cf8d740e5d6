package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
	Outline OutlineConfig `mapstructure:"outline"`
	Log     LogConfig     `mapstructure:"log"`
}

// ConvertConfig holds spreadsheet-to-markdown settings
type ConvertConfig struct {
	InputDir   string   `mapstructure:"input_dir"`  // Root scanned recursively for workbooks
	OutputDir  string   `mapstructure:"output_dir"` // Root for per-sheet markdown files
	Extensions []string `mapstructure:"extensions"` // Matched case-insensitively
}

// OutlineConfig holds table-to-outline settings
type OutlineConfig struct {
	InputDir  string   `mapstructure:"input_dir"`  // Flat directory of .md tables
	OutputDir string   `mapstructure:"output_dir"` // Reformatted files land here
	Formats   []string `mapstructure:"formats"`    // md, html, word
	Encoding  []string `mapstructure:"encoding"`   // Fallbacks tried when input is not UTF-8
}

// LogConfig holds log file settings
type LogConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

// Load reads the configuration from a file or uses defaults.
// A missing file is not an error; environment variables prefixed with
// SHEETMARK_ override both (e.g. SHEETMARK_CONVERT_INPUT_DIR).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("sheetmark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Printf("Config file %s not found. Using defaults.\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults mirrors the working-directory layout the batch scripts always used
func setDefaults(v *viper.Viper) {
	v.SetDefault("convert.input_dir", "doc/excel")
	v.SetDefault("convert.output_dir", "doc/markdown")
	v.SetDefault("convert.extensions", []string{".xlsx", ".xls", ".xlsm"})

	v.SetDefault("outline.input_dir", "doc/markdown/修正前")
	v.SetDefault("outline.output_dir", "doc/markdown/修正後")
	v.SetDefault("outline.formats", []string{"md"})
	v.SetDefault("outline.encoding", []string{"utf-8", "shift_jis", "euc-jp"})

	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.file", "sheetmark.log")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	paths := []struct {
		name string
		ptr  *string
	}{
		{"convert.input_dir", &c.Convert.InputDir},
		{"convert.output_dir", &c.Convert.OutputDir},
		{"outline.input_dir", &c.Outline.InputDir},
		{"outline.output_dir", &c.Outline.OutputDir},
		{"log.dir", &c.Log.Dir},
	}

	for _, p := range paths {
		if *p.ptr == "" {
			continue
		}
		abs, err := filepath.Abs(*p.ptr)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p.name, err)
		}
		*p.ptr = abs
	}

	for i, ext := range c.Convert.Extensions {
		c.Convert.Extensions[i] = NormalizeExt(ext)
	}

	return nil
}

// NormalizeExt lower-cases an extension and makes sure it has a leading dot
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// EnsureDir creates dir if it doesn't exist
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// LogPath returns the full path of the log file
func (c *Config) LogPath() string {
	return filepath.Join(c.Log.Dir, c.Log.File)
}

// Validate checks if the configuration is valid.
// Input directories are not required to exist: a missing spreadsheet root just
// yields no files.
func (c *Config) Validate() error {
	if len(c.Convert.Extensions) == 0 {
		return fmt.Errorf("convert.extensions must contain at least one extension")
	}
	if c.Convert.OutputDir == "" {
		return fmt.Errorf("convert.output_dir cannot be empty")
	}
	if c.Outline.OutputDir == "" {
		return fmt.Errorf("outline.output_dir cannot be empty")
	}
	if len(c.Outline.Formats) == 0 {
		return fmt.Errorf("outline.formats must contain at least one format")
	}
	if c.Log.File == "" {
		return fmt.Errorf("log.file cannot be empty")
	}
	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Sheetmark Configuration ===")
	fmt.Printf("Convert Input:    %s\n", c.Convert.InputDir)
	fmt.Printf("Convert Output:   %s\n", c.Convert.OutputDir)
	fmt.Printf("Extensions:       %v\n", c.Convert.Extensions)
	fmt.Printf("Outline Input:    %s\n", c.Outline.InputDir)
	fmt.Printf("Outline Output:   %s\n", c.Outline.OutputDir)
	fmt.Printf("Outline Formats:  %v\n", c.Outline.Formats)
	fmt.Printf("Encoding Hints:   %v\n", c.Outline.Encoding)
	fmt.Printf("Log File:         %s\n", c.LogPath())
	fmt.Println("===============================")
}
