package faq

import (
	"backend-faq/internal/models"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
)

var ErrEmptyDataset = errors.New("faq: dataset kosong")

// Decode menerima dua bentuk JSON: objek FAQDataset atau array datar
// {question, answer, category}. Keduanya dinormalisasi ke Dataset.
func Decode(data []byte, defaults Defaults) (*models.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrEmptyDataset
	}

	switch trimmed[0] {
	case '[':
		var items []models.FAQItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("faq: decode flat dataset: %w", err)
		}
		return FromItems(items, defaults), nil
	case '{':
		var ds models.Dataset
		if err := json.Unmarshal(trimmed, &ds); err != nil {
			return nil, fmt.Errorf("faq: decode dataset: %w", err)
		}
		if ds.Title == "" {
			ds.Title = defaults.Title
		}
		if ds.Description == "" {
			ds.Description = defaults.Description
		}
		normalize(&ds)
		return &ds, nil
	default:
		return nil, fmt.Errorf("faq: unexpected JSON token %q", trimmed[0])
	}
}

// FromItems mengelompokkan item datar per kategori sesuai urutan kemunculan pertama
func FromItems(items []models.FAQItem, defaults Defaults) *models.Dataset {
	ds := &models.Dataset{
		Title:       defaults.Title,
		Description: defaults.Description,
		Tabs:        []string{},
		FAQs:        map[string][]models.FAQ{},
	}

	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			log.Printf("faq: entry %q tanpa kategori, dilewati", item.Question)
			continue
		}
		if _, ok := ds.FAQs[category]; !ok {
			ds.Tabs = append(ds.Tabs, category)
		}
		ds.FAQs[category] = append(ds.FAQs[category], models.FAQ{
			Question: item.Question,
			Answer:   item.Answer,
		})
	}

	normalize(ds)
	return ds
}

func normalize(ds *models.Dataset) {
	if ds.FAQs == nil {
		ds.FAQs = map[string][]models.FAQ{}
	}

	for category, items := range ds.FAQs {
		kept := make([]models.FAQ, 0, len(items))
		for _, item := range items {
			if strings.TrimSpace(item.Question) == "" {
				log.Printf("faq: entry kosong di kategori %q, dilewati", category)
				continue
			}
			kept = append(kept, item)
		}
		ds.FAQs[category] = kept
	}

	if ds.Tabs == nil {
		ds.Tabs = make([]string, 0, len(ds.FAQs))
		for category := range ds.FAQs {
			ds.Tabs = append(ds.Tabs, category)
		}
		sort.Strings(ds.Tabs)
	}

	if missing := ds.MissingTabs(); len(missing) > 0 {
		log.Printf("faq: tab tanpa data: %s", strings.Join(missing, ", "))
	}
}
