package registry

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lookup.yaml
var lookupYAML []byte

type lookupTables struct {
	Boroughs        map[string]string `yaml:"boroughs"`
	Neighborhoods   map[string]string `yaml:"neighborhoods"`
	BuildingClasses map[string]string `yaml:"building_classes"`
	JobTypes        map[string]string `yaml:"job_types"`
}

var (
	tablesOnce sync.Once
	tables     lookupTables
)

func load() lookupTables {
	tablesOnce.Do(func() {
		// The embedded file ships with the binary; a parse failure is a
		// build defect, not a runtime condition.
		if err := yaml.Unmarshal(lookupYAML, &tables); err != nil {
			panic("registry: parse lookup.yaml: " + err.Error())
		}
	})
	return tables
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// BoroughName maps a borough digit to its name. Unknown codes pass
// through unchanged.
func BoroughName(code string) string { return lookup(load().Boroughs, code) }

// Neighborhood maps a zip code to a neighborhood name.
func Neighborhood(zip string) string {
	if v, ok := load().Neighborhoods[zip]; ok {
		return v
	}
	return ""
}

// BuildingClass maps a tax-lot building class code to a description.
func BuildingClass(code string) string { return lookup(load().BuildingClasses, code) }

// JobType maps a construction job type code to a description.
func JobType(code string) string { return lookup(load().JobTypes, code) }
