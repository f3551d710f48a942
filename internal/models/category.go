package models

// Category groups products, e.g. "Funding" or "Lending".
type Category struct {
	Base
	Name string `gorm:"not null;uniqueIndex" json:"name"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Product is a sellable item that targets are set against.
type Product struct {
	Base
	Name       string `gorm:"not null" json:"name"`
	CategoryID string `gorm:"type:uuid;not null;index" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// CategoryName returns the product's category name, or "" when the
// category relation was not loaded.
func (p *Product) CategoryName() string {
	if p == nil || p.Category == nil {
		return ""
	}
	return p.Category.Name
}
