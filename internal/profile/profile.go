// Package profile holds named resize presets.
package profile

import (
	"fmt"
	"os"
	"sort"

	"github.com/GunmeetS/rotate-resize-image/internal/encoder"
	"gopkg.in/yaml.v3"
)

// DefaultName is the preset used when a name is unknown.
const DefaultName = "web"

// Profile defines resize parameters for a target use.
type Profile struct {
	Name      string  `yaml:"-"`
	MaxWidth  int     `yaml:"max_width"`
	MaxHeight int     `yaml:"max_height"`
	Quality   float64 `yaml:"quality"`   // 0-1, ignored by png
	Format    string  `yaml:"format"`    // jpeg, png or webp
	Degrees   int     `yaml:"degrees"`   // clockwise rotation
	TargetKB  float64 `yaml:"target_kb"` // 0 = quality driven
}

// Set maps preset names to profiles.
type Set map[string]Profile

// Built-in profiles.
var builtin = Set{
	"web": {
		Name:      "web",
		MaxWidth:  1280,
		MaxHeight: 1280,
		Quality:   0.82,
		Format:    "jpeg",
	},
	"thumbnail": {
		Name:      "thumbnail",
		MaxWidth:  320,
		MaxHeight: 320,
		Quality:   0.75,
		Format:    "jpeg",
	},
	"hd": {
		Name:      "hd",
		MaxWidth:  1920,
		MaxHeight: 1080,
		Quality:   0.9,
		Format:    "jpeg",
	},
	"webp": {
		Name:      "webp",
		MaxWidth:  1600,
		MaxHeight: 1600,
		Quality:   0.8,
		Format:    "webp",
	},
}

// Builtin returns a copy of the built-in presets.
func Builtin() Set {
	s := make(Set, len(builtin))
	for k, v := range builtin {
		s[k] = v
	}
	return s
}

// Get returns a profile by name. Falls back to the web preset if unknown.
func (s Set) Get(name string) Profile {
	if p, ok := s[name]; ok {
		return p
	}
	p := builtin[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Names returns the preset names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks a profile for usable values.
func (p Profile) Validate() error {
	if p.MaxWidth <= 0 || p.MaxHeight <= 0 {
		return fmt.Errorf("profile %q: max_width and max_height must be positive", p.Name)
	}
	if p.Quality < 0 || p.Quality > 1 {
		return fmt.Errorf("profile %q: quality must be between 0 and 1", p.Name)
	}
	if p.Format != "" {
		if _, ok := encoder.Normalize(p.Format); !ok {
			return fmt.Errorf("profile %q: unsupported format %q", p.Name, p.Format)
		}
	}
	if p.TargetKB < 0 {
		return fmt.Errorf("profile %q: target_kb must not be negative", p.Name)
	}
	return nil
}

type fileFormat struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load reads user presets from a YAML file and merges them over the
// built-ins. Entries with the same name replace the built-in one.
//
//	profiles:
//	  avatar:
//	    max_width: 256
//	    max_height: 256
//	    quality: 0.8
//	    format: webp
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML presets and merges them over the built-ins.
func Parse(data []byte) (Set, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}

	s := Builtin()
	for name, p := range f.Profiles {
		p.Name = name
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profiles: %w", err)
		}
		s[name] = p
	}
	return s, nil
}
