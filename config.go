package bikeshare

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

type City struct {
	Name string
	File string
	// Demographics is set for cities whose source carries Gender and Birth Year.
	Demographics bool
}

var Cities = []City{
	{Name: "chicago", File: "chicago.csv", Demographics: true},
	{Name: "new york city", File: "new_york_city.csv", Demographics: true},
	{Name: "washington", File: "washington.csv"},
}

var (
	Months = []string{"january", "february", "march", "april", "may", "june"}
	Days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

const All = "all"

type Config struct {
	DataDir string            `yaml:"data_dir,omitempty"`
	Files   map[string]string `yaml:"files,omitempty"`
}

func DefaultConfig() Config {
	return Config{DataDir: "."}
}

// LoadConfig reads a YAML config file. Only the fields present in the file
// override the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	for name := range cfg.Files {
		if _, ok := LookupCity(name); !ok {
			return Config{}, fmt.Errorf("%w: unknown city %q in %s", ErrInvalidInput, name, path)
		}
	}
	return cfg, nil
}

func LookupCity(name string) (City, bool) {
	i := slices.IndexFunc(Cities, func(c City) bool { return c.Name == name })
	if i == -1 {
		return City{}, false
	}
	return Cities[i], true
}

// CityPath resolves the source file for a city.
func (c Config) CityPath(city City) string {
	file := city.File
	if override, ok := c.Files[city.Name]; ok && override != "" {
		file = override
	}
	if filepath.IsAbs(file) {
		return file
	}
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, file)
}
