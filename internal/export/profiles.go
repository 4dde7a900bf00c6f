package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CutterProfile describes how a contour cutter wants its DXF prepared.
type CutterProfile struct {
	Name         string  `json:"name" yaml:"name"`                   // Profile name
	Description  string  `json:"description" yaml:"description"`     // Profile description
	Layer        string  `json:"layer" yaml:"layer"`                 // Layer carrying the cut contours
	SheetOutline bool    `json:"sheet_outline" yaml:"sheet-outline"` // Draw the paper boundary as a registration reference
	OvercutMm    float64 `json:"overcut_mm" yaml:"overcut-mm"`       // Extend each contour past its closing corner (drag knives)
	MirrorX      bool    `json:"mirror_x" yaml:"mirror-x"`           // Mirror horizontally for cut-from-back media
}

// Built-in cutter profiles
var CutterProfiles = []CutterProfile{
	{
		Name:         "Summa",
		Description:  "Summa roll cutters with OPOS registration",
		Layer:        "CUT",
		SheetOutline: true,
		OvercutMm:    1.0,
		MirrorX:      false,
	},
	{
		Name:         "Graphtec",
		Description:  "Graphtec CE/FC series",
		Layer:        "CUT1",
		SheetOutline: true,
		OvercutMm:    0.5,
		MirrorX:      false,
	},
	{
		Name:         "Roland",
		Description:  "Roland CAMM-1 with drag knife",
		Layer:        "CUT",
		SheetOutline: false,
		OvercutMm:    0.3,
		MirrorX:      false,
	},
	{
		Name:         "Zund",
		Description:  "Zund flatbed with oscillating tool",
		Layer:        "THRU-CUT",
		SheetOutline: true,
		OvercutMm:    0,
		MirrorX:      false,
	},
	{
		Name:         "Generic",
		Description:  "Plain closed contours on a single layer",
		Layer:        "CUT",
		SheetOutline: false,
		OvercutMm:    0,
		MirrorX:      false,
	},
}

// GetCutterProfile returns a built-in profile by name, case-insensitively,
// or the Generic profile if not found.
func GetCutterProfile(name string) CutterProfile {
	for _, p := range CutterProfiles {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return CutterProfiles[len(CutterProfiles)-1] // Return Generic (last one)
}

// CutterProfileNames returns a list of all built-in profile names.
func CutterProfileNames() []string {
	var names []string
	for _, p := range CutterProfiles {
		names = append(names, p.Name)
	}
	return names
}

// ResolveProfile looks a name up in custom profiles first, then the
// built-ins, falling back to Generic.
func ResolveProfile(name string, custom []CutterProfile) CutterProfile {
	for _, p := range custom {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return GetCutterProfile(name)
}

// profilesFile is the on-disk YAML layout for custom profiles.
type profilesFile struct {
	Profiles []CutterProfile `yaml:"profiles"`
}

// LoadProfiles reads custom cutter profiles from a YAML file. A missing
// file is not an error and returns an empty slice, so callers can always
// point at the default location.
func LoadProfiles(path string) ([]CutterProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []CutterProfile{}, nil
		}
		return nil, err
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("cannot parse profiles file: %w", err)
	}

	for i, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile %d has no name", i+1)
		}
	}
	return file.Profiles, nil
}

// SaveProfiles writes custom cutter profiles to a YAML file.
func SaveProfiles(path string, profiles []CutterProfile) error {
	data, err := yaml.Marshal(profilesFile{Profiles: profiles})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
