package inventory

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ws-vt/technik-manager/pkg/model"
)

// SortOption selects the ordering of a filtered inventory listing.
type SortOption string

const (
	SortMarking  SortOption = "marking"
	SortCategory SortOption = "category"
	SortDate     SortOption = "date"
)

// Filter holds the search, filter and sort state of an inventory listing. Filters compose
// conjunctively.
type Filter struct {
	Search         string
	Categories     []string
	OnlyDefective  bool
	OnlyWithoutTUV bool
	SortBy         SortOption
}

// Apply runs the filter pipeline over items and returns the filtered, sorted result. It is a pure
// function; items is not modified. Applying the same filter twice gives the same result.
func Apply(items []*model.InventoryItem, filter Filter) []*model.InventoryItem {
	result := make([]*model.InventoryItem, 0, len(items))
	for _, item := range items {
		if keep(item, filter) {
			result = append(result, item)
		}
	}

	switch filter.SortBy {
	case SortMarking:
		slices.SortStableFunc(result, func(a, b *model.InventoryItem) int {
			return compareMarkings(a.Marking, b.Marking)
		})
	case SortCategory:
		slices.SortStableFunc(result, func(a, b *model.InventoryItem) int {
			return strings.Compare(a.Category, b.Category)
		})
	case SortDate:
		// newest first
		slices.SortStableFunc(result, func(a, b *model.InventoryItem) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return result
}

func keep(item *model.InventoryItem, filter Filter) bool {
	if len(filter.Categories) > 0 && !slices.Contains(filter.Categories, item.Category) {
		return false
	}

	if filter.OnlyDefective && item.IsFunctional {
		return false
	}

	if filter.OnlyWithoutTUV && item.HasTUV != nil && *item.HasTUV {
		return false
	}

	if filter.Search != "" && !matchesSearch(item, filter.Search) {
		return false
	}

	return true
}

// matchesSearch reports whether any of name, category, cable type, marking or location contains
// the query, case-insensitively. Unset optional fields never match.
func matchesSearch(item *model.InventoryItem, search string) bool {
	query := strings.ToLower(search)

	fields := []string{item.Category, item.Marking, item.Location}
	if item.Name != nil {
		fields = append(fields, *item.Name)
	}
	if item.CableType != nil {
		fields = append(fields, *item.CableType)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// compareMarkings compares numerically on the trailing digit runs when both markings have one and
// falls back to a lexicographic comparison of the full strings otherwise.
func compareMarkings(a string, b string) int {
	_, aNumber, aOk := splitMarking(a)
	_, bNumber, bOk := splitMarking(b)

	if aOk && bOk {
		return cmp.Compare(aNumber, bNumber)
	}
	return strings.Compare(a, b)
}
