package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	programlist "github.com/goliatone/go-programlist"
	"github.com/goliatone/go-programlist/pkg/catalog"
	"github.com/goliatone/go-programlist/pkg/list"
	"github.com/goliatone/go-programlist/pkg/render"
	"github.com/goliatone/go-programlist/pkg/renderers/tui"
	"github.com/goliatone/go-programlist/pkg/renderers/vanilla"
)

func main() {
	endpoint := flag.String("endpoint", "", "programs endpoint URL or local JSON file")
	rendererName := flag.String("renderer", "", "renderer to use (vanilla or tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *endpoint == "" {
		*endpoint = cfg.Endpoint
	}
	if *rendererName == "" {
		*rendererName = cfg.Renderer
	}
	if *output == "" {
		*output = cfg.Output
	}
	if *endpoint == "" {
		log.Fatalf("Missing endpoint: pass -endpoint or set it in the config file")
	}

	registry := render.NewRegistry()
	registry.MustRegister(vanilla.MustNew())
	registry.MustRegister(tui.New())

	if *rendererName == "" {
		if err := survey.AskOne(&survey.Select{
			Message: "Renderer:",
			Options: registry.List(),
			Default: vanilla.RendererName,
		}, rendererName); err != nil {
			log.Fatalf("Failed to choose renderer: %v", err)
		}
	}

	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Unknown renderer %q (available: %s)", *rendererName, strings.Join(registry.List(), ", "))
	}

	ctx := context.Background()

	model, err := programlist.NewModel(modelOptions(*endpoint, cfg.Headers)...)
	if err != nil {
		log.Fatalf("Failed to build model: %v", err)
	}
	if err := model.GetList(ctx); err != nil {
		log.Fatalf("Failed to fetch programs: %v", err)
	}

	snapshot := model.Snapshot()
	markup, err := renderer.Render(ctx, render.ListContext{
		Programs: snapshot.Programs,
		Count:    snapshot.Count,
	}, render.RenderOptions{})
	if err != nil {
		log.Fatalf("Failed to render programs: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, markup, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Program list written to %s\n", *output)
	} else {
		fmt.Println(string(markup))
	}
}

func modelOptions(endpoint string, headers map[string]string) []list.Option {
	opts := []list.Option{
		list.WithSource(parseEndpoint(endpoint)),
	}
	if len(headers) > 0 {
		opts = append(opts, list.WithLoader(programlist.NewLoader(
			catalog.WithHTTPFallback(programlist.DefaultRequestTimeout),
			catalog.WithRequestHeaders(headers),
		)))
	}
	return opts
}

func parseEndpoint(raw string) catalog.Source {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return catalog.SourceFromURL(trimmed)
	}
	return catalog.SourceFromFile(trimmed)
}
