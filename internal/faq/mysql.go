package faq

import (
	"backend-faq/internal/models"
	"context"
	"database/sql"
	"fmt"
	"log"
)

const activeFAQsQuery = `
		SELECT category, question, answer
		FROM faqs
		WHERE is_active = 'y'
		ORDER BY sort_order ASC, id ASC
	`

// MySQLSource membaca FAQ aktif dari tabel faqs (read-only)
type MySQLSource struct {
	db       *sql.DB
	defaults Defaults
}

func NewMySQLSource(db *sql.DB, defaults Defaults) *MySQLSource {
	return &MySQLSource{db: db, defaults: defaults}
}

func (s *MySQLSource) Load(ctx context.Context) (*models.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, activeFAQsQuery)
	if err != nil {
		return nil, fmt.Errorf("faq: query faqs: %w", err)
	}
	defer rows.Close()

	items := []models.FAQItem{}
	for rows.Next() {
		var item models.FAQItem
		if err := rows.Scan(&item.Category, &item.Question, &item.Answer); err != nil {
			log.Printf("faq: scan row gagal: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("faq: iterate faqs: %w", err)
	}

	return FromItems(items, s.defaults), nil
}
