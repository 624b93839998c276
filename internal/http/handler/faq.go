package handler

import (
	"backend-faq/internal/faq"
	"backend-faq/internal/metrics"
	"log"

	"github.com/gofiber/fiber/v2"
)

type FAQHandler struct {
	Source  faq.Source
	Metrics *metrics.Metrics
}

func NewFAQHandler(source faq.Source, m *metrics.Metrics) *FAQHandler {
	return &FAQHandler{Source: source, Metrics: m}
}

// GetFAQs - Public endpoint, balikin dataset FAQ lengkap apa adanya
func (h *FAQHandler) GetFAQs(c *fiber.Ctx) error {
	ds, err := h.Source.Load(c.UserContext())
	if err != nil {
		log.Printf("faq: load dataset gagal: %v", err)
		if h.Metrics != nil {
			h.Metrics.LoadErrors.Inc()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Gagal mengambil data FAQ",
		})
	}

	if h.Metrics != nil {
		h.Metrics.Entries.Set(float64(ds.Count()))
	}

	return c.JSON(ds)
}
