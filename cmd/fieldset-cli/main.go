package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/goliatone/go-fieldset/pkg/fieldset"
	"github.com/goliatone/go-fieldset/pkg/openapi"
	"github.com/goliatone/go-fieldset/pkg/render/html"
	"github.com/goliatone/go-fieldset/pkg/renderers/tui"
	"github.com/goliatone/go-fieldset/pkg/tree"
)

func main() {
	log.SetPrefix("fieldset-cli: ")
	log.SetFlags(0)

	treePath := flag.String("tree", "", "YAML or JSON tree description")
	specSource := flag.String("openapi", "", "OpenAPI document path or URL")
	opID := flag.String("operation", "", "operation ID to build (lists operations when empty)")
	values := flag.String("values", "", "JSON record to write, or @file")
	required := flag.Bool("required", false, "mark the root required")
	disabled := flag.Bool("disabled", false, "mark the root disabled")
	readOnly := flag.Bool("readonly", false, "mark the root read-only")
	reset := flag.Bool("reset", false, "reset the tree to its defaults before output")
	mode := flag.String("mode", "value", "output mode: value, state, html or prompt")
	format := flag.String("format", "json", "prompt output format: json, form or pretty")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	node, ok, err := loadTree(ctx, *treePath, *specSource, *opID)
	if err != nil {
		log.Fatalf("load tree: %v", err)
	}
	if !ok {
		return
	}

	root, err := tree.BuildFieldset(node)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if *values != "" {
		record, err := readValues(*values)
		if err != nil {
			log.Fatalf("values: %v", err)
		}
		root.SetValue(record)
		root.HandleChange()
	}
	if *required {
		root.SetRequired(true)
	}
	if *disabled {
		root.SetDisabled(true)
	}
	if *readOnly {
		root.SetReadOnly(true)
	}
	if *reset {
		root.Reset()
	}

	out, err := produce(ctx, root, *mode, tui.OutputFormat(*format))
	if err != nil {
		log.Fatalf("%s: %v", *mode, err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
		return
	}
	fmt.Println(string(out))
}

// loadTree reports ok=false when it only listed the operations of a document.
func loadTree(ctx context.Context, treePath, specSource, opID string) (tree.Node, bool, error) {
	switch {
	case treePath != "":
		node, err := tree.LoadFile(treePath)
		return node, err == nil, err
	case specSource != "":
		src, err := openapi.ParseSource(specSource)
		if err != nil {
			return tree.Node{}, false, err
		}
		loader := openapi.NewLoader(openapi.WithHTTPFallback(30 * time.Second))
		doc, err := loader.Load(ctx, src)
		if err != nil {
			return tree.Node{}, false, err
		}
		spec, err := openapi.Parse(ctx, doc)
		if err != nil {
			return tree.Node{}, false, err
		}
		if opID == "" {
			for _, op := range spec.Operations() {
				fmt.Printf("%s\t%s %s\t%s\n", op.ID, op.Method, op.Path, op.Summary)
			}
			return tree.Node{}, false, nil
		}
		form, err := spec.FormFromOperation(opID)
		if err != nil {
			return tree.Node{}, false, err
		}
		return tree.FromModel(form), true, nil
	default:
		return tree.Node{}, false, fmt.Errorf("one of -tree or -openapi is required")
	}
}

func readValues(raw string) (map[string]any, error) {
	data := []byte(raw)
	if path, ok := strings.CutPrefix(raw, "@"); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	record := map[string]any{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode JSON record: %w", err)
	}
	return record, nil
}

func produce(ctx context.Context, root *fieldset.Fieldset, mode string, format tui.OutputFormat) ([]byte, error) {
	switch mode {
	case "value":
		return json.MarshalIndent(root.Value(), "", "  ")
	case "state":
		return json.MarshalIndent(root.State(), "", "  ")
	case "html":
		renderer, err := html.New()
		if err != nil {
			return nil, err
		}
		markup, err := renderer.Render(root)
		return []byte(markup), err
	case "prompt":
		renderer, err := tui.New(tui.WithOutputFormat(format))
		if err != nil {
			return nil, err
		}
		return renderer.Render(ctx, root)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
