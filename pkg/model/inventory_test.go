package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUVApplies(t *testing.T) {
	hasTUV := true

	for _, category := range []string{CategoryStative, CategoryDigitales} {
		item := &InventoryItem{Category: category, HasTUV: &hasTUV}
		assert.False(t, item.TUVApplies(), "TÜV must be suppressed for %q regardless of the stored value", category)
	}

	for _, category := range []string{CategoryScheinwerfer, CategoryBuehnentechnik, CategoryKabel, CategoryTontechnik, CategorySonstiges} {
		item := &InventoryItem{Category: category}
		assert.True(t, item.TUVApplies(), "TÜV should be active for %q", category)
	}
}

func TestCableFieldsApply(t *testing.T) {
	assert.True(t, (&InventoryItem{Category: CategoryKabel}).CableFieldsApply())
	assert.False(t, (&InventoryItem{Category: CategoryScheinwerfer}).CableFieldsApply())
}

func TestDMXApplies(t *testing.T) {
	assert.True(t, (&InventoryItem{Category: CategoryScheinwerfer}).DMXApplies())
	assert.True(t, (&InventoryItem{Category: CategoryBuehnentechnik}).DMXApplies())
	assert.False(t, (&InventoryItem{Category: CategoryKabel}).DMXApplies())
}
