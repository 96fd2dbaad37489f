package main

import (
	"fmt"
	"log/slog"

	"json-converter/catalog"
	"json-converter/config"
	"json-converter/deck"
	"json-converter/hydrate"
)

// service converts documents against one loaded configuration.
type service struct {
	cfg    *config.Configuration
	conv   *hydrate.Converter
	deck   *deck.Converter
	strict bool
}

func newService(opts options, s settings, logger *slog.Logger) (*service, error) {
	doc, err := catalog.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	return newServiceFromDocument(doc, opts, s, logger)
}

func newServiceFromDocument(doc *catalog.Document, opts options, s settings, logger *slog.Logger) (*service, error) {
	cfg := doc.Configuration(config.Configuration{TypeKey: s.TypeKey, Logger: logger})
	if opts.deck {
		cfg = deck.Configuration(cfg)
	}

	svc := &service{cfg: &cfg, strict: opts.strict}

	// watch and serve convert the same expressions over and over
	var convOpts []hydrate.Option
	if opts.watch || opts.serveAddr != "" {
		convOpts = append(convOpts, hydrate.WithExpressionCache())
	}

	var err error
	if opts.deck {
		svc.deck, err = deck.NewConverter(svc.cfg, convOpts...)
	} else {
		svc.conv, err = hydrate.New(svc.cfg, convOpts...)
	}

	if err != nil {
		return nil, fmt.Errorf("build converter: %w", err)
	}

	return svc, nil
}

func (s *service) convert(doc any) (any, *hydrate.Diagnostics, error) {
	var (
		out   any
		diags *hydrate.Diagnostics
	)

	if s.deck != nil {
		props, d, err := s.deck.Convert(doc)
		if err != nil {
			return nil, d, err
		}

		out, diags = props, d
	} else {
		out, diags = s.conv.Convert(doc)
	}

	if s.strict {
		diags.WarningsAsErrors()
	}

	return out, diags, nil
}

func (s *service) cachedExpressions() int {
	if s.deck != nil {
		return s.deck.CachedExpressions()
	}

	return s.conv.CachedExpressions()
}

func (s *service) classes() []string {
	return s.cfg.ClassNames()
}
