package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"todo-backend/pkg/config"
	"todo-backend/pkg/openapi"
)

// Writes the OpenAPI document to OPENAPI_OUT (docs/openapi.json by default).
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	doc := openapi.BuildDocument(cfg.App.Name)

	data, err := doc.MarshalJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to marshal document:", err)
		os.Exit(1)
	}

	var pretty json.RawMessage = data
	indented, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to indent document:", err)
		os.Exit(1)
	}

	out := cfg.OpenAPI.OutputPath
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create output directory:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, append(indented, '\n'), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write document:", err)
		os.Exit(1)
	}

	fmt.Println("OpenAPI document written to", out)
}
