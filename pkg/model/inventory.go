package model

import "time"

// Inventory categories. The category decides which of the optional fields are active.
const (
	CategoryScheinwerfer   = "Scheinwerfer"
	CategoryBuehnentechnik = "Andere Bühnentechnik"
	CategoryKabel          = "Kabel"
	CategoryStative        = "Stative etc."
	CategoryTontechnik     = "Tontechnik"
	CategoryDigitales      = "Digitales"
	CategorySonstiges      = "Sonstiges"
)

var Categories = []string{
	CategoryScheinwerfer,
	CategoryBuehnentechnik,
	CategoryKabel,
	CategoryStative,
	CategoryTontechnik,
	CategoryDigitales,
	CategorySonstiges,
}

var CableTypes = []string{"Schuko", "DMX", "XLR", "Sonstige"}

var Locations = []string{"Keller", "unter der Steuerzentrale", "unter der Bühne"}

// InventoryItem domain object defining a piece of stage equipment.
//
// The marking is the human-assigned inventory tag. Uniqueness is checked by the inventory
// service right before every write, there is no unique constraint on the column.
// swagger:model
type InventoryItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         *string   `json:"name,omitempty"`
	Category     string    `json:"category"`
	CableType    *string   `json:"cableType,omitempty"`
	CableLength  *float64  `json:"cableLength,omitempty"`
	HasDMX       *bool     `json:"hasDmx,omitempty"`
	IsFunctional bool      `gorm:"default:true" json:"isFunctional"`
	HasTUV       *bool     `json:"hasTuv,omitempty"`
	Marking      string    `gorm:"index" json:"marking"`
	Location     string    `json:"location"`
	CreatedBy    string    `json:"createdBy"`
}

// CableFieldsApply reports whether cable type and length are active for the item's category.
func (i *InventoryItem) CableFieldsApply() bool {
	return i.Category == CategoryKabel
}

// DMXApplies reports whether the DMX flag is active for the item's category.
func (i *InventoryItem) DMXApplies() bool {
	return i.Category == CategoryScheinwerfer || i.Category == CategoryBuehnentechnik
}

// TUVApplies reports whether the TÜV inspection flag is active for the item's category.
func (i *InventoryItem) TUVApplies() bool {
	return i.Category != CategoryStative && i.Category != CategoryDigitales
}
