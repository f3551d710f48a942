package analytics

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"targetrack/internal/models"
)

func withEmployee(t *models.Target, name, office string) *models.Target {
	t.Employee = &models.Employee{Base: models.Base{ID: t.EmployeeID}, Name: name, OfficeLocation: office}
	return t
}

func TestTopEmployeesOrdersByRate(t *testing.T) {
	targets := []*models.Target{
		withEmployee(mkTarget("b", deposito, 1, 2024, 500000, n(500000)), "B", "Bandung"),
		withEmployee(mkTarget("a", deposito, 1, 2024, 400000, n(700000)), "A", "Jakarta"),
		withEmployee(mkTarget("a", giro, 2, 2024, 600000, n(500000)), "A", "Jakarta"),
	}

	got := TopEmployees(targets, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].EmployeeID != "a" || got[0].AchievementRate != 120 {
		t.Errorf("expected A at 120%% first, got %+v", got[0])
	}
	if got[0].TotalTarget != 1000000 || got[0].TotalAchievement != 1200000 {
		t.Errorf("unexpected A totals: %+v", got[0])
	}
	if got[0].Name != "A" || got[0].OfficeLocation != "Jakarta" {
		t.Errorf("expected employee details on the row, got %+v", got[0])
	}
	if got[1].EmployeeID != "b" || got[1].AchievementRate != 100 {
		t.Errorf("expected B at 100%% second, got %+v", got[1])
	}
}

func TestTopEmployeesTieBreak(t *testing.T) {
	targets := []*models.Target{
		withEmployee(mkTarget("x", deposito, 1, 2024, 100, n(100)), "Zaki", "A"),
		withEmployee(mkTarget("y", deposito, 1, 2024, 200, n(200)), "Yuni", "A"),
		withEmployee(mkTarget("z", deposito, 1, 2024, 100, n(100)), "Ayu", "A"),
	}

	got := TopEmployees(targets, 0)
	want := []string{"y", "z", "x"}
	for i, id := range want {
		if got[i].EmployeeID != id {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, id, got[i].EmployeeID, got)
		}
	}
}

func TestTopEmployeesZeroTarget(t *testing.T) {
	targets := []*models.Target{
		mkTarget("zero", deposito, 1, 2024, 0, n(1000)),
	}
	got := TopEmployees(targets, 5)
	if len(got) != 1 || got[0].AchievementRate != 0 {
		t.Errorf("zero total target must rank at 0%%, got %+v", got)
	}
}

func TestTopEmployeesTruncates(t *testing.T) {
	var targets []*models.Target
	for i := 0; i < 8; i++ {
		targets = append(targets, mkTarget(fmt.Sprintf("e%d", i), deposito, 1, 2024, 100, n(int64(i*10))))
	}

	if got := TopEmployees(targets, 3); len(got) != 3 {
		t.Errorf("expected 3 rows, got %d", len(got))
	}
	if got := TopEmployees(targets, 0); len(got) != DefaultTopN {
		t.Errorf("expected default of %d rows, got %d", DefaultTopN, len(got))
	}
	if got := TopEmployees(nil, 5); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil board, got %#v", got)
	}
}

func TestActiveTargetsDropsDeletedEmployees(t *testing.T) {
	gone := withEmployee(mkTarget("gone", deposito, 1, 2024, 100, n(100)), "Gone", "Jakarta")
	gone.Employee.DeletedAt = gorm.DeletedAt{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	kept := withEmployee(mkTarget("kept", deposito, 1, 2024, 100, n(50)), "Kept", "Jakarta")
	unloaded := mkTarget("unloaded", giro, 1, 2024, 100, nil)

	got := ActiveTargets([]*models.Target{gone, kept, unloaded})
	if len(got) != 2 || got[0] != kept || got[1] != unloaded {
		t.Fatalf("expected kept and unloaded targets, got %v", got)
	}

	top := TopEmployees(ActiveTargets([]*models.Target{gone, kept}), 5)
	if len(top) != 1 || top[0].EmployeeID != "kept" {
		t.Errorf("deleted employee must not be ranked, got %+v", top)
	}
}
