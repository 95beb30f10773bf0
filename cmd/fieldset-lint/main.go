package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-fieldset/pkg/openapi"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for malformed %s extensions.\n", openapi.ExtensionKey)
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"examples/fixtures/signup.yaml"}
	}

	ctx := context.Background()
	loader := openapi.NewLoader()

	failed := false
	for _, path := range paths {
		doc, err := loader.Load(ctx, openapi.SourceFromFile(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		spec, err := openapi.Parse(ctx, doc, openapi.WithoutValidation())
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, v := range spec.Lint() {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, v)
		}
	}
	if failed {
		os.Exit(1)
	}
}
