package dashboard

import (
	"context"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/services/config"
	"github.com/de-tools/cash-atlas/pkg/store/ledger"
)

// SourceService resolves profile names to ledger files and renders
// dashboards from them.
type SourceService interface {
	ListSources(ctx context.Context) ([]domain.Source, error)
	GetDashboard(ctx context.Context, source string, today time.Time, project string) (*domain.Dashboard, error)
	ListProjects(ctx context.Context, source string) ([]string, error)
}

type sourceService struct {
	registry config.Registry
	renderer Service
}

func NewSourceService(registry config.Registry, renderer Service) SourceService {
	return &sourceService{registry: registry, renderer: renderer}
}

func (s *sourceService) ListSources(ctx context.Context) ([]domain.Source, error) {
	profiles, err := s.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	var sources []domain.Source
	for _, profile := range profiles {
		sources = append(sources, domain.Source{Name: profile})
	}
	return sources, nil
}

func (s *sourceService) GetDashboard(
	ctx context.Context,
	source string,
	today time.Time,
	project string,
) (*domain.Dashboard, error) {
	src, err := s.registry.GetSource(ctx, source)
	if err != nil {
		return nil, err
	}

	expense, err := ledger.Load("expense", src.ExpensePath)
	if err != nil {
		return nil, err
	}
	inflow, err := ledger.Load("inflow", src.InflowPath)
	if err != nil {
		return nil, err
	}

	return s.renderer.Render(ctx, expense, inflow, today, Options{Project: project})
}

func (s *sourceService) ListProjects(ctx context.Context, source string) ([]string, error) {
	src, err := s.registry.GetSource(ctx, source)
	if err != nil {
		return nil, err
	}

	inflow, err := ledger.Load("inflow", src.InflowPath)
	if err != nil {
		return nil, err
	}

	return s.renderer.Projects(ctx, inflow)
}
