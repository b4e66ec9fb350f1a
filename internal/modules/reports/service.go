package reports

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Category is one of the six fixed report categories.
type Category string

const (
	CategoryVentas     Category = "ventas"
	CategoryInventario Category = "inventario"
	CategoryProduccion Category = "produccion"
	CategoryClientes   Category = "clientes"
	CategoryFinanciero Category = "financiero"
	CategoryContratos  Category = "contratos"
)

// Aggregator computes the summary metrics and the detail table for one
// business category over a date range.
type Aggregator interface {
	Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error)
	Detail(ctx context.Context, tenantID int64, start, end time.Time) (Detail, error)
}

// CategoryInfo describes one report category for listings and exports.
type CategoryInfo struct {
	Code     Category `json:"codigo"`
	Title    string   `json:"nombre"`
	FileName string   `json:"-"`
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryVentas:     {Code: CategoryVentas, Title: "Reporte de Ventas", FileName: "Reporte_Ventas"},
	CategoryInventario: {Code: CategoryInventario, Title: "Reporte de Inventario", FileName: "Reporte_Inventario"},
	CategoryProduccion: {Code: CategoryProduccion, Title: "Reporte de Producción", FileName: "Reporte_Produccion"},
	CategoryClientes:   {Code: CategoryClientes, Title: "Reporte de Clientes", FileName: "Reporte_Clientes"},
	CategoryFinanciero: {Code: CategoryFinanciero, Title: "Reporte Financiero", FileName: "Reporte_Financiero"},
	CategoryContratos:  {Code: CategoryContratos, Title: "Reporte de Contratos", FileName: "Reporte_Contratos"},
}

// FileName returns the export file base name for the category.
func (c Category) FileName() string {
	if info, ok := categoryInfos[c]; ok {
		return info.FileName
	}
	return "Reporte"
}

// Categories returns the category descriptors in a stable order.
func Categories() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(categoryInfos))
	for _, info := range categoryInfos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos
}

// ValidCategories returns the accepted category codes, for client errors.
func ValidCategories() string {
	infos := Categories()
	codes := make([]string, 0, len(infos))
	for _, info := range infos {
		codes = append(codes, string(info.Code))
	}
	return strings.Join(codes, ", ")
}

// Service is the report assembler: it resolves the aggregator for a
// category and wraps its output in the report envelope.
type Service struct {
	aggregators map[Category]Aggregator
	now         func() time.Time
}

func NewService(
	sales *SalesAggregator,
	inventory *InventoryAggregator,
	production *ProductionAggregator,
	clients *ClientsAggregator,
	finance *FinanceAggregator,
	contracts *ContractsAggregator,
) *Service {
	return &Service{
		aggregators: map[Category]Aggregator{
			CategoryVentas:     sales,
			CategoryInventario: inventory,
			CategoryProduccion: production,
			CategoryClientes:   clients,
			CategoryFinanciero: finance,
			CategoryContratos:  contracts,
		},
		now: time.Now,
	}
}

// ParseDateRange resolves the requested period. Missing or malformed
// values silently fall back to the trailing 30 days ending today.
func (s *Service) ParseDateRange(startStr, endStr string) (time.Time, time.Time) {
	now := s.now()

	start := now.AddDate(0, 0, -30)
	if startStr != "" {
		if parsed, err := time.Parse("2006-01-02", startStr); err == nil {
			start = parsed
		}
	}

	end := now
	if endStr != "" {
		if parsed, err := time.Parse("2006-01-02", endStr); err == nil {
			end = parsed
		}
	}

	return start, end
}

// Assemble builds the report envelope for one category.
func (s *Service) Assemble(ctx context.Context, tenantID int64, category Category, start, end time.Time) (*Report, error) {
	if tenantID == 0 {
		return nil, ErrTenantRequired
	}

	agg, ok := s.aggregators[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	metrics, err := agg.Metrics(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}
	detail, err := agg.Detail(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	return &Report{
		Category:    category,
		Title:       categoryInfos[category].Title,
		PeriodStart: start,
		PeriodEnd:   end,
		Metrics:     metrics,
		Detail:      detail,
		GeneratedAt: s.now(),
	}, nil
}

// Summary is the bulk envelope of one category: full metrics, detail
// truncated for the dashboard, true row count preserved.
type Summary struct {
	Title        string  `json:"titulo"`
	PeriodStart  string  `json:"periodo_inicio"`
	PeriodEnd    string  `json:"periodo_fin"`
	Metrics      Metrics `json:"metricas"`
	Detail       Detail  `json:"detalle"`
	TotalRecords int     `json:"total_registros"`
}

const summaryDetailLimit = 10

// AssembleAll builds every category's report for one range. The six
// aggregations share no mutable state, so they run concurrently.
func (s *Service) AssembleAll(ctx context.Context, tenantID int64, start, end time.Time) (map[Category]*Summary, error) {
	if tenantID == 0 {
		return nil, ErrTenantRequired
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		results  = make(map[Category]*Summary, len(s.aggregators))
		firstErr error
	)

	for category := range s.aggregators {
		wg.Add(1)
		go func(category Category) {
			defer wg.Done()

			report, err := s.Assemble(ctx, tenantID, category, start, end)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", category, err)
				}
				return
			}

			detail := report.Detail
			if len(detail) > summaryDetailLimit {
				detail = detail[:summaryDetailLimit]
			}
			results[category] = &Summary{
				Title:        report.Title,
				PeriodStart:  start.Format("2006-01-02"),
				PeriodEnd:    end.Format("2006-01-02"),
				Metrics:      report.Metrics,
				Detail:       detail,
				TotalRecords: len(report.Detail),
			}
		}(category)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// round2 rounds monetary and percentage values to two decimals. Rates and
// averages under a zero denominator never reach here; callers emit 0.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
