package model

import "time"

// ShoppingItem domain object defining an item on the shared shopping list
// swagger:model
type ShoppingItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Price     *float64  `json:"price,omitempty"`
	Link      *string   `json:"link,omitempty"`
	Priority  int       `json:"priority"`
	CreatedBy string    `json:"createdBy"`
}

// ShoppingNote is a free-form note attached to a shopping item, author-deletable only.
// swagger:model
type ShoppingNote struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	ShoppingItemID uint      `gorm:"index" json:"shoppingItemId"`
	Content        string    `json:"content"`
	CreatedBy      string    `json:"createdBy"`
}
