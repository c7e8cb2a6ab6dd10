package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/couchcryptid/zone-load-map/internal/domain"
	"gopkg.in/yaml.v3"
)

// defaultAliases maps Bas-Rhin territorial unit labels, as they appear in the
// medical follow-up export, to boundary names in the Alsace GeoJSON.
// The four Strasbourg units share one boundary.
var defaultAliases = map[string]string{
	"UT STRASBOURG OUEST":  "STRASBOURG-3",
	"UT HAGUENAU":          "HAGUENAU",
	"UT MOLSHEIM":          "MOLSHEIM",
	"UT INGWILLER":         "INGWILLER",
	"UT OBERNAI":           "OBERNAI",
	"UT LINGOLSHEIM":       "LINGOLSHEIM",
	"UT BISCHWILLER":       "BISCHWILLER",
	"UT SÉLESTAT":          "SÉLESTAT",
	"UT STRASBOURG NORD":   "STRASBOURG-3",
	"UT SAVERNE":           "SAVERNE",
	"UT BRUMATH":           "BRUMATH",
	"UT ERSTEIN":           "ERSTEIN",
	"UT STRASBOURG FINKWI": "STRASBOURG-3",
	"UT WISSEMBOURG":       "WISSEMBOURG",
	"UT STRASBOURG SUD":    "STRASBOURG-3",
	"UT BOUXWILLER":        "BOUXWILLER",
}

// DefaultAliases returns the built-in alias table.
func DefaultAliases() domain.AliasTable {
	return domain.NewAliasTable(defaultAliases)
}

// aliasFile is the YAML layout of ALIAS_FILE:
//
//	aliases:
//	  UT HAGUENAU: HAGUENAU
//	  UT STRASBOURG SUD: STRASBOURG-3
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases reads an alias table from a YAML file.
func LoadAliases(path string) (domain.AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AliasTable{}, fmt.Errorf("read ALIAS_FILE: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.AliasTable{}, fmt.Errorf("parse ALIAS_FILE: %w", err)
	}
	if len(f.Aliases) == 0 {
		return domain.AliasTable{}, errors.New("parse ALIAS_FILE: no aliases defined")
	}
	return domain.NewAliasTable(f.Aliases), nil
}
