package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-linkfield/internal/prompt"
	"github.com/goliatone/go-linkfield/pkg/model"
	"github.com/goliatone/go-linkfield/pkg/orchestrator"
	"github.com/goliatone/go-linkfield/pkg/render"
	"github.com/goliatone/go-linkfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-linkfield/pkg/uischema"
)

type options struct {
	config      string
	panel       string
	value       string
	label       string
	locale      string
	baseURL     string
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "panel document (JSON or YAML)")
	flag.StringVar(&opts.panel, "panel", "", "panel id to render (all panels if empty)")
	flag.StringVar(&opts.value, "value", "", "JSON display value rendered as a single field")
	flag.StringVar(&opts.label, "label", "Value", "label used with -value or -interactive")
	flag.StringVar(&opts.locale, "locale", "", "locale used for placeholders")
	flag.StringVar(&opts.baseURL, "base-url", "", "prefix for root-relative link targets")
	flag.BoolVar(&opts.interactive, "interactive", false, "prompt for the value to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	var driver prompt.Driver
	if opts.interactive {
		driver = prompt.NewSurveyDriver()
	}

	outputHTML, err := run(ctx, opts, driver)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("Failed to render panel: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Panel written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func run(ctx context.Context, opts options, driver prompt.Driver) ([]byte, error) {
	genOpts := []orchestrator.Option{
		orchestrator.WithVanillaOptions(
			vanilla.WithLocale(opts.locale),
			vanilla.WithLinkRenderer(render.NewHTMLLinkRenderer(render.WithBaseURL(opts.baseURL))),
		),
	}

	var requests []orchestrator.Request
	switch {
	case driver != nil:
		value, err := prompt.AskValue(ctx, driver)
		if err != nil {
			return nil, err
		}
		panel := singleFieldPanel(opts.label, value)
		requests = append(requests, orchestrator.Request{Panel: &panel})
	case strings.TrimSpace(opts.value) != "":
		value, err := model.DecodeJSON([]byte(opts.value))
		if err != nil {
			return nil, err
		}
		panel := singleFieldPanel(opts.label, value)
		requests = append(requests, orchestrator.Request{Panel: &panel})
	case strings.TrimSpace(opts.config) != "":
		store, err := uischema.LoadFile(opts.config)
		if err != nil {
			return nil, err
		}
		genOpts = append(genOpts, orchestrator.WithStore(store))
		ids := store.IDs()
		if id := strings.TrimSpace(opts.panel); id != "" {
			ids = []string{id}
		}
		for _, id := range ids {
			requests = append(requests, orchestrator.Request{PanelID: id})
		}
	default:
		return nil, errors.New("one of -config, -value or -interactive is required")
	}

	gen := orchestrator.New(genOpts...)
	var out bytes.Buffer
	for idx, req := range requests {
		if idx > 0 {
			out.WriteString("\n")
		}
		rendered, err := gen.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		out.Write(rendered)
	}
	return out.Bytes(), nil
}

func singleFieldPanel(label string, value model.DisplayValue) model.Panel {
	return model.Panel{
		Fields: []model.Field{{Name: "value", Label: label, Value: value}},
	}
}
