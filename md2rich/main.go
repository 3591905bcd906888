// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2rich converts forum markup to rich text.
//
// Usage:
//
//	md2rich [-i] [-v] [file...]
//
// Md2rich reads the named files, or else standard input, as markup
// and prints the rich text of each as one line of JSON to standard output.
//
// The -i flag indents the JSON. The -v flag logs every markup
// construct that has no rich text form and was dropped.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/misago/richtext"
)

var cli struct {
	Indent  bool     `short:"i" help:"Indent the JSON output."`
	Verbose bool     `short:"v" env:"RICHTEXT_VERBOSE" help:"Log dropped markup to standard error."`
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Markup files to convert (default: standard input)."`
}

var exit = 0

func main() {
	log.SetPrefix("md2rich: ")
	log.SetFlags(0)
	ctx := kong.Parse(&cli,
		kong.Name("md2rich"),
		kong.Description("Convert forum markup to rich text JSON."),
		kong.UsageOnError(),
	)

	var p richtext.Parser
	if cli.Verbose {
		p.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if len(cli.Files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		ctx.FatalIfErrorf(err)
		convert(&p, data)
	} else {
		for _, file := range cli.Files {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			convert(&p, data)
		}
	}
	os.Exit(exit)
}

func convert(p *richtext.Parser, data []byte) {
	rt := p.Parse(context.Background(), string(data))
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if cli.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rt); err != nil {
		log.Print(err)
		exit = 1
	}
}
