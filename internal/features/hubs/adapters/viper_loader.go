package adapters

import (
	"fmt"

	"freight-quoter/internal/features/hubs/domain"

	"github.com/spf13/viper"
)

type hubEntry struct {
	Code   string `mapstructure:"code"`
	Name   string `mapstructure:"name"`
	Region string `mapstructure:"region"`
}

type regionEntry struct {
	Region     string            `mapstructure:"region"`
	Preference []string          `mapstructure:"preference"`
	Cities     map[string]string `mapstructure:"cities"`
}

// LoadDirectory reads the hub directory from a YAML, JSON or TOML file.
//
//	hubs:
//	  - {code: GRU, name: São Paulo, region: SP}
//	regions:
//	  - region: SP
//	    preference: [GRU, VCP]
//	    cities: {campinas: VCP}
func LoadDirectory(path string) (*domain.Directory, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading hub directory %s: %w", path, err)
	}

	var hubs []hubEntry
	if err := v.UnmarshalKey("hubs", &hubs); err != nil {
		return nil, fmt.Errorf("unable to decode hubs: %w", err)
	}
	if len(hubs) == 0 {
		return nil, fmt.Errorf("hub directory %s defines no hubs", path)
	}

	var regions []regionEntry
	if err := v.UnmarshalKey("regions", &regions); err != nil {
		return nil, fmt.Errorf("unable to decode regions: %w", err)
	}

	domainHubs := make([]domain.Hub, 0, len(hubs))
	for _, h := range hubs {
		domainHubs = append(domainHubs, domain.Hub{Code: h.Code, DisplayName: h.Name, Region: h.Region})
	}

	rules := make([]domain.RegionRule, 0, len(regions))
	for _, r := range regions {
		rules = append(rules, domain.RegionRule{Region: r.Region, Preference: r.Preference, Cities: r.Cities})
	}

	return domain.NewDirectory(domainHubs, rules)
}
