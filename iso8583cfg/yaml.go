// Package iso8583cfg loads a MessageFactory's configuration from an
// external YAML document — the "configuration loading from external
// markup" collaborator the core codec deliberately excludes. It parses
// into the same FactoryConfig shape the core's own JSON loader uses, so a
// deployment can choose either markup format without the core package
// importing a markup parser itself.
package iso8583cfg

import (
	"fmt"
	"os"

	"github.com/cardrail/iso8583"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML factory configuration file and returns a
// FactoryBuilder ready for further options or Build.
func LoadFile(path string) (*iso8583.FactoryBuilder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iso8583cfg: reading %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a YAML factory configuration document and returns a
// FactoryBuilder ready for further options or Build.
func Load(data []byte) (*iso8583.FactoryBuilder, error) {
	var cfg iso8583.FactoryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("iso8583cfg: parsing YAML: %w", err)
	}
	return iso8583.BuildFactoryBuilder(&cfg)
}
