package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/cash-atlas/pkg/adapters"
	"github.com/de-tools/cash-atlas/pkg/models/api"
	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSourceService struct {
	mock.Mock
}

func (m *mockSourceService) ListSources(ctx context.Context) ([]domain.Source, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Source), args.Error(1)
}

func (m *mockSourceService) GetDashboard(
	ctx context.Context,
	source string,
	today time.Time,
	project string,
) (*domain.Dashboard, error) {
	args := m.Called(ctx, source, today, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *mockSourceService) ListProjects(ctx context.Context, source string) ([]string, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func figure(target, achieved int64) domain.PeriodFigure {
	return domain.NewPeriodFigure(decimal.NewFromInt(target), decimal.NewFromInt(achieved))
}

// dashboardFixture is a minimal rendered dashboard for reference 2025-08-05.
func dashboardFixture(reference time.Time) *domain.Dashboard {
	july := domain.FiscalWindow{Start: month(2025, time.July), End: month(2025, time.July)}
	year := domain.FiscalWindow{Start: month(2025, time.April), End: month(2025, time.July)}

	alpha := domain.InflowProjectRow{
		Project: "Alpha",
		MTD:     decimal.NewFromInt(1800),
		QTD:     decimal.NewFromInt(1800),
		YTD:     decimal.NewFromInt(3000),
	}

	return &domain.Dashboard{
		Reference: reference,
		Windows:   domain.Windows{MTD: july, QTD: july, YTD: year},
		Caption:   "MTD = Last completed month",
		Inflow:    domain.InflowSummary{Rows: []domain.InflowProjectRow{alpha}, Total: alpha},
		InflowChart: []domain.ChartSeries{
			{Period: domain.PeriodMTD, Points: []domain.ChartPoint{{Project: "Alpha", Value: decimal.NewFromInt(1800)}}},
		},
		Reconciliation: domain.ReconTable{Rows: []domain.ReconRow{
			{
				Kind:  domain.RowTotalInflow,
				Label: "Total Inflow",
				MTD:   figure(1500, 1800),
				QTD:   figure(1500, 1800),
				YTD:   figure(3000, 3300),
			},
			{
				Kind:  domain.RowNetCashFlow,
				Label: "Net Cash Flow",
				MTD:   figure(350, 650),
				QTD:   figure(350, 650),
				YTD:   figure(700, 900),
			},
		}},
		Projects: []string{"Alpha", "Beta"},
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	mockSources := new(mockSourceService)

	cfg := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Dashboard: mockSources,
			Logger:    logger,
		},
	}
	router := ConfigureRouter(cfg)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	reference, _ := time.Parse("2006-01-02", "2025-08-05")
	dashboard := dashboardFixture(reference)

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "ListSources",
			path: "/api/v1/sources",
			setupMocks: func() {
				mockSources.On("ListSources", mock.Anything).
					Return([]domain.Source{{Name: "finance-2025"}, {Name: "archive"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       []api.Source{{Name: "finance-2025"}, {Name: "archive"}},
			parseResponse:  unmarshalResponse[[]api.Source](),
		},
		{
			name: "GetDashboard",
			path: "/api/v1/sources/finance-2025/dashboard?date=2025-08-05&project=Alpha",
			setupMocks: func() {
				mockSources.On("GetDashboard", mock.Anything, "finance-2025", reference, "Alpha").
					Return(dashboard, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       adapters.MapDashboardDomainToApi(dashboard),
			parseResponse:  unmarshalResponse[api.Dashboard](),
		},
		{
			name:           "GetDashboard_InvalidDate",
			path:           "/api/v1/sources/finance-2025/dashboard?date=invalid-date",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Error: "invalid 'date' format. Expected format: YYYY-MM-DD"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name: "GetDashboard_UnknownSource",
			path: "/api/v1/sources/missing/dashboard?date=2025-08-05",
			setupMocks: func() {
				mockSources.On("GetDashboard", mock.Anything, "missing", reference, "").
					Return(nil, fmt.Errorf("%q: %w", "missing", config.ErrProfileNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expected:       api.Error{Error: `"missing": profile not found`},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name: "GetDashboard_InvalidLedger",
			path: "/api/v1/sources/broken/dashboard?date=2025-08-05",
			setupMocks: func() {
				mockSources.On("GetDashboard", mock.Anything, "broken", reference, "").
					Return(nil, fmt.Errorf("expense ledger: %w", &domain.InvalidMonthError{Values: []string{"Febuary"}}))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expected:       api.Error{Error: "expense ledger: invalid month values: Febuary"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name: "ListProjects",
			path: "/api/v1/sources/finance-2025/projects",
			setupMocks: func() {
				mockSources.On("ListProjects", mock.Anything, "finance-2025").
					Return([]string{"Alpha", "Beta"}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       []string{"Alpha", "Beta"},
			parseResponse:  unmarshalResponse[[]string](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
