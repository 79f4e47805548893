package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/tamasfe/scaffold/cmd/scaffold/config"
	"github.com/tamasfe/scaffold/internal/markdown"
	"github.com/tamasfe/scaffold/pkg/common"
	"github.com/tamasfe/scaffold/pkg/registry"
	"github.com/tamasfe/scaffold/pkg/render"
)

type described interface {
	common.DescriptionMarkdown
	Name() string
}

// section demotes every heading of the description by one level.
func section(b *strings.Builder, d described) {
	desc := bufio.NewScanner(bytes.NewBufferString(d.DescriptionMarkdown()))
	b.WriteString("# " + d.Name() + "\n")

	for desc.Scan() {
		line := desc.Text()
		if len(line) != 0 && line[0] == '#' {
			line = "#" + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func write(path, content string) {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		panic(err)
	}
}

func main() {
	var generatorsBuilder strings.Builder
	var transformersBuilder strings.Builder

	for _, g := range config.Generators {
		if d, ok := g.(described); ok {
			section(&generatorsBuilder, d)
		}
	}

	generatorsBuilder.WriteString("# Path patterns\n\n")
	generatorsBuilder.WriteString("Page patterns are Go templates with [sprig](http://masterminds.github.io/sprig/) functions and the following values:\n\n")
	generatorsBuilder.WriteString(markdown.ValuesTable(render.PathValues{}))

	for _, t := range config.Transformers {
		section(&transformersBuilder, t)
	}

	ctx := context.Background()
	reg := registry.Default()
	for _, tOpts := range config.DefaultOptions().Transformers {
		t, err := config.GetTransformer(tOpts.Name)
		if err != nil {
			panic(err)
		}
		reg, err = t.Transform(ctx, tOpts.Options, reg)
		if err != nil {
			panic(err)
		}
	}

	var registryBuilder strings.Builder
	registryBuilder.WriteString("# Use cases\n\n")
	registryBuilder.WriteString(markdown.UseCasesTable(reg.UseCases()))
	registryBuilder.WriteString("\n# Projects\n\n")
	registryBuilder.WriteString(markdown.ProjectsTable(reg.Projects()))

	write("./docs/cli/generators/README.md", markdown.GenTOC("# Generators\n", generatorsBuilder.String()))
	write("./docs/cli/transformers/README.md", markdown.GenTOC("# Registry transformers\n", transformersBuilder.String()))
	write("./docs/registry/README.md", markdown.GenTOC("# Built-in registry\n", registryBuilder.String()))
}
