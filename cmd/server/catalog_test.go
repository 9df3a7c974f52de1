package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Clark-Hu/movienest/internal/catalog"
	"github.com/Clark-Hu/movienest/internal/domain"
)

func TestWriteCatalogFormats(t *testing.T) {
	movies := catalog.Default().List()

	var jsonBuf bytes.Buffer
	if err := writeCatalog(&jsonBuf, movies, "json"); err != nil {
		t.Fatalf("writeCatalog(json) unexpected error: %v", err)
	}
	var fromJSON []domain.Movie
	if err := json.Unmarshal(jsonBuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(fromJSON) != len(movies) || fromJSON[0] != movies[0] {
		t.Fatalf("json output mismatch: %+v", fromJSON)
	}

	var yamlBuf bytes.Buffer
	if err := writeCatalog(&yamlBuf, movies, "YAML"); err != nil {
		t.Fatalf("writeCatalog(yaml) unexpected error: %v", err)
	}
	var fromYAML []domain.Movie
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(fromYAML) != len(movies) || fromYAML[len(movies)-1] != movies[len(movies)-1] {
		t.Fatalf("yaml output mismatch: %+v", fromYAML)
	}
}

func TestWriteCatalogUnsupportedFormat(t *testing.T) {
	err := writeCatalog(&bytes.Buffer{}, nil, "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("writeCatalog(xml) error = %v", err)
	}
}

func TestCatalogCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newCatalogCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "yaml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "title: The Matrix") {
		t.Fatalf("catalog output missing The Matrix:\n%s", out.String())
	}
}
