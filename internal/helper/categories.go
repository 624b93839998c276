package helper

import (
	"backend-faq/internal/models"
	"sort"
)

// CategoryOrder - urutan kategori eksplisit untuk agregasi tab "All".
// Urutan tabs dulu (tanpa "All", tanpa duplikat), lalu key faqs yang tidak
// tercantum di tabs, diurutkan alfabetis.
func CategoryOrder(tabs []string, faqs map[string][]models.FAQ) []string {
	seen := make(map[string]bool, len(tabs))
	order := make([]string, 0, len(faqs))

	for _, tab := range tabs {
		if tab == models.AllTab || seen[tab] {
			continue
		}
		seen[tab] = true
		order = append(order, tab)
	}

	var rest []string
	for category := range faqs {
		if !seen[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)

	return append(order, rest...)
}

// TabsWithoutAll - tabs dengan entry "All" literal dibuang, urutan tetap
func TabsWithoutAll(tabs []string) []string {
	out := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab != models.AllTab {
			out = append(out, tab)
		}
	}
	return out
}
