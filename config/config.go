// Package config loads sniff configuration (spec.md §6) and the
// optional hierarchy-extension file a host can supply to extend or
// override the HierarchyOracle's builtin Library, via YAML
// (gopkg.in/yaml.v3), mirroring the typed-struct-with-defaults load
// pattern the teacher's FPM pool config used.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wudi/phpdoctype/hierarchy"
)

// Config holds the seven boolean check flags spec.md §6 names, plus
// DebugMode which governs the walker's error-recovery policy (spec
// §7).
type Config struct {
	DebugMode         bool `yaml:"debug_mode"`
	CheckHasDocBlocks bool `yaml:"check_has_doc_blocks"`
	CheckHasTags      bool `yaml:"check_has_tags"`
	CheckNoMisplaced  bool `yaml:"check_no_misplaced"`
	CheckTypeMatch    bool `yaml:"check_type_match"`
	CheckStyle        bool `yaml:"check_style"`
	CheckPhpFig       bool `yaml:"check_php_fig"`
	CheckPassSplat    bool `yaml:"check_pass_splat"`

	// HierarchyExtensionsPath, when set, points at a YAML file adding
	// or overriding hierarchy.Library entries (SPEC_FULL.md §2.3).
	HierarchyExtensionsPath string `yaml:"hierarchy_extensions_path"`
}

// Strict returns the preset with every check enabled (spec §6: "A
// strict preset enables everything").
func Strict() Config {
	return Config{
		CheckHasDocBlocks: true,
		CheckHasTags:      true,
		CheckNoMisplaced:  true,
		CheckTypeMatch:    true,
		CheckStyle:        true,
		CheckPhpFig:       true,
		CheckPassSplat:    true,
	}
}

// Default returns the preset spec §6 names: "only checkNoMisplaced,
// checkTypeMatch, checkPassSplat".
func Default() Config {
	return Config{
		CheckNoMisplaced: true,
		CheckTypeMatch:   true,
		CheckPassSplat:   true,
	}
}

// Load reads a YAML config file, starting from Default() so an
// incomplete file still yields sane flags.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// hierarchyExtensionsFile is the on-disk shape of a hierarchy
// extension/override file.
type hierarchyExtensionsFile struct {
	Extend   hierarchy.Library `yaml:"extend"`
	Override hierarchy.Library `yaml:"override"`
}

// LoadHierarchy merges an extension file's `extend` entries onto
// hierarchy.DefaultLibrary (adding, never removing, supertypes for an
// existing name) and replaces any name listed under `override`
// wholesale. Returns hierarchy.DefaultLibrary unchanged if cfg names
// no extensions file.
func (c Config) LoadHierarchy() (hierarchy.Library, error) {
	base := hierarchy.Library{}
	for k, v := range hierarchy.DefaultLibrary {
		cp := make([]string, len(v))
		copy(cp, v)
		base[k] = cp
	}
	if c.HierarchyExtensionsPath == "" {
		return base, nil
	}
	data, err := os.ReadFile(c.HierarchyExtensionsPath)
	if err != nil {
		return nil, fmt.Errorf("config: reading hierarchy extensions %s: %w", c.HierarchyExtensionsPath, err)
	}
	var ext hierarchyExtensionsFile
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("config: parsing hierarchy extensions %s: %w", c.HierarchyExtensionsPath, err)
	}
	for name, supers := range ext.Extend {
		base[name] = append(base[name], supers...)
	}
	for name, supers := range ext.Override {
		base[name] = supers
	}
	return base, nil
}
