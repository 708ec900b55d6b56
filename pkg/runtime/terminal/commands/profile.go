package commands

import (
	"fmt"

	"github.com/cosmo-tools/astro-atlas/pkg/adapters"
	"github.com/cosmo-tools/astro-atlas/pkg/models/api"
	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// LoadProfile reads a profile file (YAML or JSON) into the domain model.
func LoadProfile(profilePath string) (domain.Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile api.Profile
	if err := v.Unmarshal(&profile); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	return adapters.MapProfileApiToDomain(profile), nil
}
