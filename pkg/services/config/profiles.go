package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ErrProfileNotFound marks lookups for profiles absent from the file.
var ErrProfileNotFound = errors.New("profile not found")

// Registry exposes the ledger sources defined in an ini profiles file.
// Each section names one source with expense_path and inflow_path keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetSource(ctx context.Context, profile string) (*domain.Source, error)
}

type sourceRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &sourceRegistry{cfg: cfg}, nil
}

func (sr *sourceRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range sr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (sr *sourceRegistry) GetSource(_ context.Context, profile string) (*domain.Source, error) {
	section, err := sr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", profile, ErrProfileNotFound)
	}

	expense := section.Key("expense_path").String()
	inflow := section.Key("inflow_path").String()
	if expense == "" || inflow == "" {
		return nil, fmt.Errorf("profile %q must define expense_path and inflow_path", profile)
	}

	return &domain.Source{
		Name:        profile,
		ExpensePath: expense,
		InflowPath:  inflow,
	}, nil
}
