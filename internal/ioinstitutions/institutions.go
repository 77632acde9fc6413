// Package ioinstitutions loads the institutions registry from
// institutions.yaml in the config directory.
package ioinstitutions

import (
	"os"

	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/institutions"
	"gopkg.in/yaml.v3"
)

type ioinstitutions struct {
	cfg *config.Config
}

func New(cfg *config.Config) institutions.Institutions {
	res := ioinstitutions{cfg: cfg}
	return &res
}

func (i *ioinstitutions) Load() (*institutions.Registry, error) {
	instPath := config.InstitutionsFilePath(i.cfg.HomeDir)
	registry, err := loadRegistry(instPath)
	if err != nil {
		return nil, RegistryError(instPath, err)
	}
	return registry, nil
}

func loadRegistry(path string) (*institutions.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var registry institutions.Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, err
	}

	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return &registry, nil
}
