package models

// Target is a monthly sales goal for one employee on one product. Nominal
// is expressed in the smallest whole currency unit.
//
// Relations are optional and nil when not preloaded. The JSON keys for
// Product and Achievement are capitalized to match the wire format
// consumers already parse.
type Target struct {
	Base
	EmployeeID string `gorm:"type:uuid;not null;index" json:"employee_id"`
	ProductID  string `gorm:"type:uuid;not null;index" json:"product_id"`
	Nominal    int64  `gorm:"not null" json:"nominal"`
	Month      int    `gorm:"not null;index:idx_target_period" json:"month"`
	Year       int    `gorm:"not null;index:idx_target_period" json:"year"`

	Employee    *Employee    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Product     *Product     `gorm:"foreignKey:ProductID" json:"Product,omitempty"`
	Achievement *Achievement `gorm:"foreignKey:TargetID" json:"Achievement"`
}

// AchievementNominal returns the realized nominal, treating a missing
// achievement as zero.
func (t *Target) AchievementNominal() int64 {
	if t.Achievement == nil {
		return 0
	}
	return t.Achievement.Nominal
}

// EmployeeName returns the employee's name, or "" when not loaded.
func (t *Target) EmployeeName() string {
	if t.Employee == nil {
		return ""
	}
	return t.Employee.Name
}

// ProductName returns the product's name, or "" when not loaded.
func (t *Target) ProductName() string {
	if t.Product == nil {
		return ""
	}
	return t.Product.Name
}

// Achieved reports whether the target has an achievement whose nominal
// meets or exceeds the target nominal.
func Achieved(t *Target) bool {
	return t.Achievement != nil && t.Achievement.Nominal >= t.Nominal
}

// Percentage returns achievement as a percentage of target. A zero target
// always yields 0, whatever the achievement.
func Percentage(target, achievement int64) float64 {
	if target <= 0 {
		return 0
	}
	return float64(achievement) / float64(target) * 100
}
