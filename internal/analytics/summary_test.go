package analytics

import (
	"encoding/json"
	"testing"

	"targetrack/internal/models"
)

var (
	funding = &models.Category{Base: models.Base{ID: "cat-funding"}, Name: "Funding"}
	lending = &models.Category{Base: models.Base{ID: "cat-lending"}, Name: "Lending"}

	deposito = &models.Product{Base: models.Base{ID: "p-deposito"}, Name: "Deposito", CategoryID: funding.ID, Category: funding}
	giro     = &models.Product{Base: models.Base{ID: "p-giro"}, Name: "Giro", CategoryID: funding.ID, Category: funding}
	kur      = &models.Product{Base: models.Base{ID: "p-kur"}, Name: "KUR", CategoryID: lending.ID, Category: lending}
)

func mkTarget(employeeID string, product *models.Product, month, year int, nominal int64, achievement *int64) *models.Target {
	t := &models.Target{
		EmployeeID: employeeID,
		ProductID:  product.ID,
		Product:    product,
		Month:      month,
		Year:       year,
		Nominal:    nominal,
	}
	if achievement != nil {
		t.Achievement = &models.Achievement{TargetID: t.ID, Nominal: *achievement}
	}
	return t
}

func n(v int64) *int64 { return &v }

func TestMonthlySummary(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 1, 2024, 1000, n(500)),
		mkTarget("e2", giro, 1, 2024, 3000, nil),
		mkTarget("e1", deposito, 3, 2024, 2000, n(2500)),
		mkTarget("e1", deposito, 1, 2023, 9999, n(9999)),
	}

	got := MonthlySummary(targets, 2024)
	if len(got) != 2 {
		t.Fatalf("expected 2 months, got %d: %+v", len(got), got)
	}

	jan := got[0]
	if jan.Month != 1 || jan.Target != 4000 || jan.Achievement != 500 {
		t.Errorf("unexpected January rollup: %+v", jan)
	}
	if jan.Percentage != 12.5 {
		t.Errorf("expected 12.5%%, got %v", jan.Percentage)
	}

	mar := got[1]
	if mar.Month != 3 || mar.Target != 2000 || mar.Achievement != 2500 || mar.Percentage != 125 {
		t.Errorf("unexpected March rollup: %+v", mar)
	}
}

func TestMonthlySummarySparseMonths(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 6, 2024, 100, nil),
		mkTarget("e1", deposito, 8, 2024, 100, nil),
	}
	for _, p := range MonthlySummary(targets, 2024) {
		if p.Month == 7 {
			t.Fatal("month without targets must not appear in the summary")
		}
	}
}

func TestMonthlySummaryEmpty(t *testing.T) {
	got := MonthlySummary(nil, 2024)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMonthlySummaryZeroNominal(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 2, 2024, 0, n(700)),
	}
	got := MonthlySummary(targets, 2024)
	if len(got) != 1 {
		t.Fatalf("zero-nominal target should still produce a month, got %d", len(got))
	}
	if got[0].Target != 0 || got[0].Achievement != 700 || got[0].Percentage != 0 {
		t.Errorf("unexpected zero-target rollup: %+v", got[0])
	}
}

func TestMonthlySummaryDuplicatePeriodsAreSummed(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 4, 2024, 100, n(50)),
		mkTarget("e1", deposito, 4, 2024, 300, n(150)),
	}
	got := MonthlySummary(targets, 2024)
	if len(got) != 1 || got[0].Target != 400 || got[0].Achievement != 200 || got[0].Percentage != 50 {
		t.Errorf("duplicate periods should be summed, got %+v", got)
	}
}

func TestMonthlySummaryByCategory(t *testing.T) {
	orphan := &models.Product{Base: models.Base{ID: "p-orphan"}, Name: "Orphan"}
	targets := []*models.Target{
		mkTarget("e1", deposito, 1, 2024, 1000, n(1000)),
		mkTarget("e2", giro, 2, 2024, 500, nil),
		mkTarget("e1", kur, 1, 2024, 2000, n(1000)),
		mkTarget("e1", orphan, 5, 2024, 100, nil),
		mkTarget("e1", kur, 1, 2023, 2000, n(1000)),
	}
	noProduct := &models.Target{EmployeeID: "e3", Month: 5, Year: 2024, Nominal: 50}
	targets = append(targets, noProduct)

	got := MonthlySummaryByCategory(targets, 2024)
	if len(got) != 3 {
		t.Fatalf("expected Funding, Lending, Uncategorized; got %+v", got)
	}

	if got[0].CategoryName != "Funding" || len(got[0].Months) != 2 {
		t.Errorf("unexpected Funding series: %+v", got[0])
	}
	if got[1].CategoryName != "Lending" || got[1].Months[0].Percentage != 50 {
		t.Errorf("unexpected Lending series: %+v", got[1])
	}
	if got[2].CategoryName != UncategorizedName || got[2].Months[0].Target != 150 {
		t.Errorf("unexpected Uncategorized series: %+v", got[2])
	}
}

func TestProductTargetSummary(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 1, 2024, 1000, n(5000)),
		mkTarget("e2", deposito, 2, 2024, 1000, nil),
		mkTarget("e1", giro, 6, 2024, 5000, nil),
		mkTarget("e1", kur, 12, 2024, 2000, nil),
		mkTarget("e1", kur, 1, 2023, 7000, nil),
	}

	t.Run("whole year", func(t *testing.T) {
		got := ProductTargetSummary(targets, 2024, nil)
		if len(got) != 3 {
			t.Fatalf("expected 3 products, got %d", len(got))
		}
		if got[0].ProductName != "Giro" || got[0].TotalNominal != 5000 {
			t.Errorf("expected Giro first, got %+v", got[0])
		}
		if got[1].TotalNominal != 2000 || got[2].TotalNominal != 2000 {
			t.Errorf("expected two products at 2000, got %+v", got[1:])
		}
		if got[1].ProductName != "Deposito" || got[1].CategoryName != "Funding" {
			t.Errorf("ties should sort by product name, got %+v", got[1])
		}
	})

	t.Run("sums target not achievement", func(t *testing.T) {
		got := ProductTargetSummary(targets[:1], 2024, nil)
		if got[0].TotalNominal != 1000 {
			t.Errorf("expected target nominal 1000, got %d", got[0].TotalNominal)
		}
	})

	t.Run("inclusive month range", func(t *testing.T) {
		got := ProductTargetSummary(targets, 2024, &MonthRange{From: 2, To: 6})
		if len(got) != 2 {
			t.Fatalf("expected Deposito(Feb) and Giro(Jun), got %+v", got)
		}
		if got[1].ProductName != "Deposito" || got[1].TotalNominal != 1000 {
			t.Errorf("unexpected Deposito total: %+v", got[1])
		}
	})
}

func TestEmployeePerformance(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 9, 2024, 1000, n(800)),
		mkTarget("e1", giro, 2, 2024, 500, n(500)),
		mkTarget("e1", deposito, 2, 2024, 500, nil),
		mkTarget("e2", deposito, 2, 2024, 9000, nil),
	}

	all := EmployeePerformance(targets, "e1", 2024, "")
	if len(all) != 2 || all[0].Month != 2 || all[1].Month != 9 {
		t.Fatalf("expected months [2 9], got %+v", all)
	}
	if all[0].Target != 1000 || all[0].Achievement != 500 || all[0].Percentage != 50 {
		t.Errorf("unexpected February: %+v", all[0])
	}

	onlyGiro := EmployeePerformance(targets, "e1", 2024, giro.ID)
	if len(onlyGiro) != 1 || onlyGiro[0].Percentage != 100 {
		t.Errorf("expected Giro February at 100%%, got %+v", onlyGiro)
	}

	if got := EmployeePerformance(targets, "missing", 2024, ""); len(got) != 0 {
		t.Errorf("expected no points for unknown employee, got %+v", got)
	}
}

func TestAvailableYears(t *testing.T) {
	targets := []*models.Target{
		mkTarget("e1", deposito, 1, 2025, 1, nil),
		mkTarget("e1", deposito, 1, 2023, 1, nil),
		mkTarget("e1", deposito, 2, 2025, 1, nil),
	}
	got := AvailableYears(targets)
	if len(got) != 2 || got[0] != 2023 || got[1] != 2025 {
		t.Errorf("expected [2023 2025], got %v", got)
	}
	if AvailableYears(nil) == nil {
		t.Error("expected empty non-nil slice")
	}
}

func TestNormalizePerformance(t *testing.T) {
	body := `[
		{"month": "2025-11", "target": 100, "achievement": 50, "percentage": 50},
		{"month": "2025-03", "target": 200, "achievement": 300, "percentage": 150},
		{"month": 7, "target": 0, "achievement": 10, "percentage": 999}
	]`
	var raw []RawPerformancePoint
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := NormalizePerformance(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].Month != 3 || got[1].Month != 7 || got[2].Month != 11 {
		t.Fatalf("expected months [3 7 11], got %+v", got)
	}
	if got[1].Percentage != 0 {
		t.Errorf("zero target must read 0%%, got %v", got[1].Percentage)
	}

	t.Run("rejects malformed keys", func(t *testing.T) {
		for _, key := range []MonthKey{"2025-13", "March", ""} {
			if _, err := NormalizePerformance([]RawPerformancePoint{{Month: key}}); err == nil {
				t.Errorf("expected error for month key %q", key)
			}
		}
	})
}
