// Command projectio runs a single project-finance projection from a
// built-in sample model, prints the full report to stdout, and writes
// JSON/CSV/XLSX artefacts plus amortisation and tornado charts to the
// configured report directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"projectio/adjustment"
	"projectio/chartio"
	"projectio/facade"
	"projectio/internal/concurrency/waitgroup"
	"projectio/internal/obs/config"
	"projectio/internal/obs/log"
	"projectio/model"
	"projectio/reportio"
	"projectio/sensitivity"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log.Init(&cfg.Log)

	if err := run(cfg); err != nil {
		zlog.Error().Err(err).Msg("projection run failed")
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig) error {
	m := sampleModel()
	be := facade.BreakEvenParams{FixedCosts: 40000, UnitPrice: 100, VariableCostPerUnit: 60}

	bundle, diagnostics, err := facade.Run(m, be)
	if err != nil {
		return fmt.Errorf("run projection: %w", err)
	}
	for _, d := range diagnostics {
		zlog.Warn().Str("source", d.Source).Msg(d.Message)
	}

	report := reportio.New(bundle)
	fmt.Print(report.ToCLI())

	if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := writeArtifacts(cfg.ReportDir, report); err != nil {
		return err
	}

	tornado, err := runSensitivity(m, be, cfg.SensitivityPar)
	if err != nil {
		return fmt.Errorf("sensitivity sweep: %w", err)
	}
	tornadoHTML, err := chartio.TornadoChart(tornado)
	if err != nil {
		return fmt.Errorf("render tornado chart: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.ReportDir, "tornado.html"), []byte(tornadoHTML), 0o644); err != nil {
		return fmt.Errorf("write tornado chart: %w", err)
	}

	for name, rows := range bundle.Amortizations {
		html, err := chartio.AmortizationChart(name, rows)
		if err != nil {
			return fmt.Errorf("render amortization chart for %q: %w", name, err)
		}
		path := filepath.Join(cfg.ReportDir, "amortization-"+name+".html")
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write amortization chart for %q: %w", name, err)
		}
	}

	zlog.Info().Str("dir", cfg.ReportDir).Msg("projection artefacts written")
	return nil
}

func writeArtifacts(dir string, report *reportio.Report) error {
	jsonDoc, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "projection.json"), []byte(jsonDoc), 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	csvDoc, err := report.ToCSV()
	if err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cashflow.csv"), []byte(csvDoc), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if err := report.ToXLSX(filepath.Join(dir, "projection.xlsx")); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// runSensitivity drives the sensitivity sweep with a bounded worker pool:
// the engine itself is single-threaded per call, so parallelism across
// (variable, variation) pairs is the caller's responsibility.
func runSensitivity(m model.ProjectModel, be facade.BreakEvenParams, parallelism int) ([]model.TornadoRow, error) {
	variables := []string{"revenue", "costs", "investment", "quantity", "discountRate"}

	wg := waitgroup.New(parallelism)
	var mu sync.Mutex
	var results []model.SensitivityResult
	var firstErr error

	for _, variable := range variables {
		for _, variation := range sensitivity.DefaultVariations {
			wg.Add(1)
			go func(variable string, variation float64) {
				defer wg.Done()
				adjusted := adjustment.Apply(m, map[string]float64{variable: variation})
				bundle, _, err := facade.Run(adjusted, be)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				results = append(results, model.SensitivityResult{
					Variable:  variable,
					Variation: variation,
					NPV:       bundle.Indicators.NPV,
					IRR:       bundle.Indicators.IRR,
				})
			}(variable, variation)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return sensitivity.Tornado(results), nil
}

func sampleModel() model.ProjectModel {
	return model.ProjectModel{
		Parameters: model.ProjectParameters{
			ConstructionYears: 2,
			OperationYears:    10,
			DiscountRate:      12,
			InflationRate:     3,
			TaxRate:           25,
		},
		Investments: []model.Investment{
			{Category: model.CategoryLand, Amount: 50000, Year: 0, UsefulLife: 1, DepreciationMethod: model.NoDepreciation},
			{Category: model.CategoryBuildings, Amount: 300000, Year: 1, UsefulLife: 20, DepreciationMethod: model.StraightLine},
			{Category: model.CategoryMachinery, Amount: 150000, Year: 2, UsefulLife: 10, SalvageValue: 15000, DepreciationMethod: model.DecliningBalance, DepreciationRate: 20},
		},
		Products: []model.Product{
			{
				Name:            "widget",
				UnitPrice:       100,
				PriceEscalation: 2,
				ProductionSchedule: []model.ProductionScheduleRow{
					{Year: 1, CapacityUtilization: 60, Quantity: 6000},
					{Year: 2, CapacityUtilization: 80, Quantity: 8000},
					{Year: 3, CapacityUtilization: 90, Quantity: 9000},
					{Year: 4, CapacityUtilization: 100, Quantity: 10000},
					{Year: 5, CapacityUtilization: 100, Quantity: 10000},
					{Year: 6, CapacityUtilization: 100, Quantity: 10000},
					{Year: 7, CapacityUtilization: 100, Quantity: 10000},
					{Year: 8, CapacityUtilization: 100, Quantity: 10000},
					{Year: 9, CapacityUtilization: 100, Quantity: 10000},
					{Year: 10, CapacityUtilization: 100, Quantity: 10000},
				},
			},
		},
		OperatingCosts: []model.OperatingCost{
			{CostType: model.CostVariable, Description: "raw materials", Amount: 240000, UnitCost: 60, EscalationRate: 3, StartYear: 1},
			{CostType: model.CostFixed, Description: "administration", Amount: 40000, EscalationRate: 2, StartYear: 1},
		},
		Financings: []model.Financing{
			{Type: model.FinancingEquity, Name: "sponsor equity", Amount: 200000, DisbursementYear: 0},
			{Type: model.FinancingLoan, Name: "senior debt", Amount: 300000, InterestRate: 9, TermYears: 8, GracePeriod: 2, DisbursementYear: 1, RepaymentStartYear: 3},
		},
	}
}
