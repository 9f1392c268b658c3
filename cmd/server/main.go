package main

import (
	"fmt"
	"log"

	"docverify/internal/config"
	"docverify/internal/extractor"
	"docverify/internal/extractor/claude"
	"docverify/internal/extractor/gemini"
	"docverify/internal/extractor/openai"
	"docverify/internal/handler"
	"docverify/internal/port"
	"docverify/internal/preview"
	"docverify/internal/router"
	"docverify/internal/storage/s3"
	"docverify/internal/verify"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("main: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registerProviders()

	ex, err := buildExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("building extractor: %w", err)
	}

	var store port.ObjectStorage
	if cfg.S3.Enabled() {
		store, err = s3.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("building s3 client: %w", err)
		}
		log.Printf("main: preview store enabled (bucket %s)", cfg.S3.Bucket)
	} else {
		log.Printf("main: preview store disabled, serving previews inline")
	}

	verifier := verify.NewService(ex)
	renderer := preview.NewRenderer(&cfg.Preview)

	verificationHandler := handler.NewVerificationHandler(verifier, renderer, store, cfg)
	documentTypesHandler := handler.NewDocumentTypesHandler()
	healthHandler := handler.NewHealthHandler()

	r := router.Setup(cfg, verificationHandler, documentTypesHandler, healthHandler)

	log.Printf("main: listening on %s (%s)", cfg.Server.Port, cfg.Server.Environment)
	return r.Run(cfg.Server.Port)
}

func registerProviders() {
	extractor.RegisterProvider("gemini", func(cfg *config.ExtractorProviderConfig) (port.DocumentExtractor, error) {
		return gemini.NewClient(cfg), nil
	})
	extractor.RegisterProvider("openai", func(cfg *config.ExtractorProviderConfig) (port.DocumentExtractor, error) {
		return openai.NewClient(cfg), nil
	})
	extractor.RegisterProvider("claude", func(cfg *config.ExtractorProviderConfig) (port.DocumentExtractor, error) {
		return claude.NewClient(cfg), nil
	})
}

// buildExtractor assembles the provider failover chain from the configured
// primary, secondary, and tertiary tiers.
func buildExtractor(cfg *config.ExtractorConfig) (port.DocumentExtractor, error) {
	var extractors []port.DocumentExtractor
	var names []string

	for _, tier := range []*config.ExtractorProviderConfig{
		cfg.PrimaryConfig(),
		cfg.SecondaryConfig(),
		cfg.TertiaryConfig(),
	} {
		if tier == nil {
			continue
		}
		ex, err := extractor.NewExtractor(tier)
		if err != nil {
			return nil, err
		}
		extractors = append(extractors, ex)
		names = append(names, tier.Provider)
	}

	if len(extractors) == 0 {
		return nil, fmt.Errorf("no extractor providers configured")
	}
	if len(extractors) == 1 {
		log.Printf("main: extractor provider %s", names[0])
		return extractors[0], nil
	}

	log.Printf("main: extractor fallback chain %v", names)
	return extractor.NewFallback(extractors, names), nil
}
