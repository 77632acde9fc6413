// Package institutions provides the schema for institutions.yaml,
// the registry of California community colleges and universities the
// fetch command pairs up when downloading agreements.
package institutions

// Institutions loads the registry from its configured location.
type Institutions interface {
	Load() (*Registry, error)
}

// Registry is the complete institutions.yaml configuration file.
type Registry struct {
	// CommunityColleges lists sending institutions.
	CommunityColleges []Institution `yaml:"community_colleges"`

	// Universities lists receiving institutions.
	Universities []Institution `yaml:"universities"`
}

// Institution identifies one school by its ASSIST id.
type Institution struct {
	// ID is the ASSIST institution id.
	ID int `yaml:"id"`

	// Name is a human-readable label, informational only.
	Name string `yaml:"name"`
}

// Validate reports problems that would make a fetch run pointless.
func (r *Registry) Validate() error {
	if len(r.CommunityColleges) == 0 {
		return ErrNoCommunityColleges
	}
	if len(r.Universities) == 0 {
		return ErrNoUniversities
	}
	for _, inst := range r.CommunityColleges {
		if inst.ID <= 0 {
			return badIDError("community_colleges", inst)
		}
	}
	for _, inst := range r.Universities {
		if inst.ID <= 0 {
			return badIDError("universities", inst)
		}
	}
	return nil
}
