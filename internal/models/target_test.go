package models

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		target      int64
		achievement int64
		want        float64
	}{
		{"zero target with achievement", 0, 500000, 0},
		{"zero target zero achievement", 0, 0, 0},
		{"exact", 1000000, 1000000, 100},
		{"over", 1000000, 1200000, 120},
		{"half", 500000, 250000, 50},
		{"nothing achieved", 500000, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percentage(tc.target, tc.achievement); got != tc.want {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tc.target, tc.achievement, got, tc.want)
			}
		})
	}
}

func TestAchieved(t *testing.T) {
	t.Run("no achievement", func(t *testing.T) {
		if Achieved(&Target{Nominal: 0}) {
			t.Error("target without achievement must not be achieved, even at zero nominal")
		}
	})

	t.Run("below target", func(t *testing.T) {
		tgt := &Target{Nominal: 1000, Achievement: &Achievement{Nominal: 999}}
		if Achieved(tgt) {
			t.Error("expected not achieved")
		}
	})

	t.Run("meets target", func(t *testing.T) {
		tgt := &Target{Nominal: 1000, Achievement: &Achievement{Nominal: 1000}}
		if !Achieved(tgt) {
			t.Error("expected achieved")
		}
	})

	t.Run("exceeds target", func(t *testing.T) {
		tgt := &Target{Nominal: 1000, Achievement: &Achievement{Nominal: 1500}}
		if !Achieved(tgt) {
			t.Error("expected achieved")
		}
	})
}

func TestTargetRelationAccessors(t *testing.T) {
	tgt := &Target{}
	if tgt.AchievementNominal() != 0 || tgt.EmployeeName() != "" || tgt.ProductName() != "" {
		t.Errorf("absent relations should read as zero values, got %d %q %q",
			tgt.AchievementNominal(), tgt.EmployeeName(), tgt.ProductName())
	}
	if tgt.Product.CategoryName() != "" {
		t.Error("nil product should have empty category name")
	}

	tgt.Employee = &Employee{Name: "Sari"}
	tgt.Product = &Product{Name: "Deposito", Category: &Category{Name: "Funding"}}
	tgt.Achievement = &Achievement{Nominal: 42}
	if tgt.AchievementNominal() != 42 || tgt.EmployeeName() != "Sari" || tgt.ProductName() != "Deposito" {
		t.Errorf("unexpected accessor values: %d %q %q", tgt.AchievementNominal(), tgt.EmployeeName(), tgt.ProductName())
	}
	if tgt.Product.CategoryName() != "Funding" {
		t.Errorf("expected Funding, got %q", tgt.Product.CategoryName())
	}
}

func TestMonthName(t *testing.T) {
	if MonthName(3) != "March" {
		t.Errorf("expected March, got %s", MonthName(3))
	}
	if MonthName(0) != "—" || MonthName(13) != "—" {
		t.Error("out-of-range months should render as a dash")
	}
}

func TestPositionValid(t *testing.T) {
	if !PositionAO.Valid() || !PositionFO.Valid() {
		t.Error("AO and FO must be valid")
	}
	if Position("CEO").Valid() {
		t.Error("unknown positions must be invalid")
	}
}
