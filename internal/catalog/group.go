package catalog

import "bobamenu/internal/domain"

// GroupByCategory buckets drinks in domain.Categories order. Categories with
// no drinks are left out; drinks keep their relative order inside a bucket.
func GroupByCategory(drinks []domain.Drink) []domain.CategoryGroup {
	buckets := map[domain.Category][]domain.Drink{}
	for _, d := range drinks {
		buckets[d.Category] = append(buckets[d.Category], d)
	}
	out := []domain.CategoryGroup{}
	for _, c := range domain.Categories {
		if ds := buckets[c]; len(ds) > 0 {
			out = append(out, domain.CategoryGroup{Category: c, Label: c.Label(), Drinks: ds})
		}
	}
	return out
}
