// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rich2html converts stored rich text to HTML.
//
// Usage:
//
//	rich2html [-s style] [--sanitize] [--css] [file...]
//
// Rich2html reads the named files, or else standard input, as rich text
// JSON documents and then prints the corresponding HTML to standard output.
//
// Code blocks naming a known syntax are highlighted using the chroma
// style given by -s (or $RICHTEXT_STYLE). The --sanitize flag
// (or $RICHTEXT_SANITIZE) passes the HTML through the sanitizing policy.
// The --css flag prints the stylesheet for the style and exits.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/misago/richtext"
)

var cli struct {
	Style    string   `short:"s" env:"RICHTEXT_STYLE" default:"monokai" help:"Chroma style for highlighted code."`
	Plain    bool     `help:"Do not highlight code."`
	Sanitize bool     `env:"RICHTEXT_SANITIZE" help:"Sanitize the rendered HTML."`
	CSS      bool     `name:"css" help:"Print the stylesheet for the style and exit."`
	Files    []string `arg:"" optional:"" type:"existingfile" help:"Rich text JSON files (default: standard input)."`
}

func main() {
	log.SetPrefix("rich2html: ")
	log.SetFlags(0)
	ctx := kong.Parse(&cli,
		kong.Name("rich2html"),
		kong.Description("Render rich text JSON as HTML."),
		kong.UsageOnError(),
	)

	hl := richtext.NewHighlighter(cli.Style)
	if cli.CSS {
		ctx.FatalIfErrorf(hl.WriteCSS(os.Stdout))
		return
	}

	r := &richtext.Renderer{Highlighter: hl}
	if cli.Plain {
		r.Highlighter = nil
	}
	if cli.Sanitize {
		r.Policy = richtext.SanitizePolicy()
	}

	if len(cli.Files) == 0 {
		do(r, os.Stdin, "standard input")
	} else {
		for _, file := range cli.Files {
			f, err := os.Open(file)
			if err != nil {
				log.Fatal(err)
			}
			do(r, f, file)
			f.Close()
		}
	}
}

func do(r *richtext.Renderer, f io.Reader, name string) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	html, err := r.RenderJSON(context.Background(), data)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	os.Stdout.WriteString(html)
	os.Stdout.WriteString("\n")
}
