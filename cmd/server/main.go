package main

import (
	"backend-faq/internal/config"
	"backend-faq/internal/faq"
	"backend-faq/internal/http/handler"
	"backend-faq/internal/http/middleware"
	"backend-faq/internal/metrics"
	"fmt"
	"log"
	"net/http"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()
	cfg := config.LoadFAQConfig()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	source := newSource(cfg, m)
	defer config.CloseDB()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET",
	}))
	app.Use(middleware.Metrics(m))

	faqHandler := handler.NewFAQHandler(source, m)

	app.Get("/", handler.Health)
	app.Get("/api/faqs", faqHandler.GetFAQs)

	if cfg.MetricsPort > 0 {
		go runMetricsServer(reg, cfg.MetricsPort)
	}

	addr := config.GetEnv("APP_HOST", "") + ":" + config.GetEnv("APP_PORT", "8080")
	log.Println("Server jalan di", addr)
	log.Fatal(app.Listen(addr))
}

// newSource - file (default) atau mysql, opsional dibungkus cache Redis
func newSource(cfg config.FAQConfig, m *metrics.Metrics) faq.Source {
	defaults := faq.Defaults{Title: cfg.Title, Description: cfg.Description}

	var source faq.Source
	switch {
	case cfg.Source == config.SourceMySQL:
		config.InitDB()
		source = faq.NewMySQLSource(config.DB, defaults)
		log.Println("Sumber FAQ: mysql")
	case cfg.DataFile != "":
		source = faq.OpenFile(cfg.DataFile, defaults)
		log.Println("Sumber FAQ:", cfg.DataFile)
	default:
		source = faq.NewDefaultSource(defaults)
		log.Println("Sumber FAQ: dataset bawaan")
	}

	config.InitRedis()
	if config.Redis == nil {
		return source
	}

	cached := faq.NewCachedSource(config.Redis, source, cfg.CacheTTL, m)
	// dataset bisa berubah antar deploy, jangan pakai cache lama
	if err := cached.Invalidate(config.Ctx); err != nil {
		log.Println("Gagal reset cache FAQ:", err)
	}
	return cached
}

func runMetricsServer(reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", port)
	log.Println("Metrics jalan di", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Println("Metrics server berhenti:", err)
	}
}
