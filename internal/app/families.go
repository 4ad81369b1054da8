package app

import (
	"update-vendor-files/internal/types"
)

func (s Service) ListFamilies(extra map[string]string) (FamiliesResult, error) {
	families, err := s.Families.With(extra)
	if err != nil {
		return FamiliesResult{}, err
	}
	var out []types.Family
	for _, name := range families.Names() {
		out = append(out, families[name])
	}
	return FamiliesResult{Families: out}, nil
}
