package models

// AllTab adalah tab sintetis yang menggabungkan semua kategori
const AllTab = "All"

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQItem - bentuk datar (array bertag kategori), hanya untuk input
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type Dataset struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Tabs        []string         `json:"tabs"`
	FAQs        map[string][]FAQ `json:"faqs"`
}

// Count - total entry di semua kategori
func (d *Dataset) Count() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, items := range d.FAQs {
		total += len(items)
	}
	return total
}

// MissingTabs - tab yang tidak punya key di FAQs
func (d *Dataset) MissingTabs() []string {
	var missing []string
	for _, tab := range d.Tabs {
		if tab == AllTab {
			continue
		}
		if _, ok := d.FAQs[tab]; !ok {
			missing = append(missing, tab)
		}
	}
	return missing
}
