package models

// Achievement is the realized nominal recorded against a target. At most
// one achievement exists per target.
type Achievement struct {
	Base
	TargetID string `gorm:"type:uuid;not null;uniqueIndex" json:"target_id"`
	Nominal  int64  `gorm:"not null" json:"nominal"`

	Target *Target `gorm:"foreignKey:TargetID" json:"target,omitempty"`
}
