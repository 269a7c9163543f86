package list

import (
	"github.com/sells-group/grocery-cli/internal/ingredient"
	"github.com/sells-group/grocery-cli/internal/match"
	"github.com/sells-group/grocery-cli/internal/model"
	"github.com/sells-group/grocery-cli/internal/units"
)

// bucketKey partitions a match-key group by quantity compatibility.
// Members in the same bucket sum; members in different buckets become
// separate line items sharing the display name.
func bucketKey(ing model.ScaledIngredient) string {
	switch {
	case ing.Quantity == nil:
		return "null"
	case ing.Unit == "":
		return "unitless"
	}
	kind, ok := units.KindOf(ing.Unit)
	if !ok {
		return "unit:" + ing.Unit
	}
	if kind == units.KindCount {
		// Count units never sum across codes (cloves + cans).
		return "count:" + ing.Unit
	}
	// Metric and imperial quantities of the same kind have no defined
	// conversion factor and stay separate.
	system, _ := units.SystemOf(ing.Unit)
	return string(kind) + ":" + string(system)
}

// mergeBucket accumulates the scaled ingredients for one output line.
type mergeBucket struct {
	matchKey string
	name     string
	hasQty   bool
	total    float64
	unit     string // most granular canonical unit seen; "" for unitless
	sources  []model.ItemSource
}

// mergeBatches groups every scaled ingredient across all recipes by
// match key, merges compatible quantities, and emits items in
// first-encounter order. Every consumed line lands in exactly one
// item's sources; nothing is dropped.
func mergeBatches(batches []recipeBatch, policy units.DisplayPolicy) []model.ShoppingListItem {
	displayNames := make(map[string]string) // match key -> first-seen name
	buckets := make(map[string]*mergeBucket)
	var order []string

	for _, batch := range batches {
		for _, ing := range batch.scaled {
			key := match.Key(ing.Name)
			if _, seen := displayNames[key]; !seen {
				displayNames[key] = ing.Name
			}

			bk := key + "\x00" + bucketKey(ing)
			b, ok := buckets[bk]
			if !ok {
				b = &mergeBucket{matchKey: key}
				buckets[bk] = b
				order = append(order, bk)
			}
			b.add(ing)
		}
	}

	items := make([]model.ShoppingListItem, 0, len(order))
	for _, bk := range order {
		b := buckets[bk]
		item := model.ShoppingListItem{
			Name:    displayNames[b.matchKey],
			Sources: b.sources,
		}
		if b.hasQty {
			item.Quantity, item.Unit = b.display(policy)
		}
		items = append(items, item)
	}
	return items
}

func (b *mergeBucket) add(ing model.ScaledIngredient) {
	b.sources = append(b.sources, model.ItemSource{
		RecipeID:     ing.RecipeID,
		RecipeTitle:  ing.RecipeTitle,
		OriginalLine: ing.OriginalLine,
	})
	if ing.Quantity == nil {
		return
	}

	if !b.hasQty {
		b.hasQty = true
		b.total = *ing.Quantity
		b.unit = ing.Unit
		return
	}

	// Keep the running total in the most granular unit seen so far.
	target := units.MostGranular(b.unit, ing.Unit)
	if target != b.unit {
		if converted, err := units.Convert(b.total, b.unit, target); err == nil {
			b.total = converted
			b.unit = target
		}
	}
	v := *ing.Quantity
	if ing.Unit != b.unit {
		converted, err := units.Convert(v, ing.Unit, b.unit)
		if err != nil {
			// Same bucket implies convertible; an unknown unit code
			// would have landed in its own bucket.
			return
		}
		v = converted
	}
	b.total += v
}

// display renders the merged total as human-friendly strings.
func (b *mergeBucket) display(policy units.DisplayPolicy) (quantity, unit string) {
	v, code := b.total, b.unit
	if code != "" {
		v, code = policy.ChooseDisplayUnit(v, code)
	}
	return ingredient.FormatQuantity(v), code
}
