package expense

import "sort"

// SemCategoria is the bucket for records with an empty category.
const SemCategoria = "Sem categoria"

// TopCategories is how many categories the summary highlights.
const TopCategories = 3

// CategoryTotal pairs a category with the summed amount of its records.
type CategoryTotal struct {
	Categoria string
	Total     float64
}

// Summary condenses a collection for the summary screens.
type Summary struct {
	Count      int
	Total      float64
	Average    float64
	ByCategory []CategoryTotal // descending by total
	Top        []CategoryTotal // leading TopCategories entries of ByCategory
}

// AggregateByCategory sums amounts per category. Records without a category
// are counted under SemCategoria.
func AggregateByCategory(list []Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range list {
		cat := e.Categoria
		if cat == "" {
			cat = SemCategoria
		}
		totals[cat] += e.Valor
	}
	return totals
}

// Summarize computes the totals shown by the summary menus. The per-category
// list is ordered by descending total, ties broken by name so the output is
// deterministic. An empty collection yields a zeroed summary.
func Summarize(list []Expense) Summary {
	s := Summary{Count: len(list)}
	if s.Count == 0 {
		return s
	}

	for _, e := range list {
		s.Total += e.Valor
	}
	s.Average = s.Total / float64(s.Count)

	totals := AggregateByCategory(list)
	s.ByCategory = make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Categoria: cat, Total: total})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Total != s.ByCategory[j].Total {
			return s.ByCategory[i].Total > s.ByCategory[j].Total
		}
		return s.ByCategory[i].Categoria < s.ByCategory[j].Categoria
	})

	top := len(s.ByCategory)
	if top > TopCategories {
		top = TopCategories
	}
	s.Top = s.ByCategory[:top]

	return s
}
