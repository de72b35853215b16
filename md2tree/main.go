// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2tree prints the inline structure of Markdown paragraphs.
//
// Usage:
//
//	md2tree [-f format] [--max-depth n] [--collapse-code] [--config file] [file...]
//
// Md2tree reads the named files, or else standard input, and splits the text
// into paragraphs at blank lines. Link reference definitions at the start of
// a paragraph are collected from the whole input first, so that a link can
// refer to a definition that comes after it. Each remaining paragraph is then
// parsed as inline content and printed.
//
// The -f flag selects the output format: tree (the default) prints one node
// per line with children indented, text prints the plain text of each
// paragraph, and yaml and json print the nodes as structured data.
//
// The --max-depth and --collapse-code flags set the corresponding
// parser options. The --config flag names a YAML file giving defaults
// for the other flags, as in:
//
//	format: yaml
//	max-depth: 32
//	collapse-code: true
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"rsc.io/inline"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// A config holds the settings that can come from a config file or flags.
type config struct {
	Format       string `yaml:"format"`
	MaxDepth     int    `yaml:"max-depth"`
	CollapseCode bool   `yaml:"collapse-code"`
}

var formats = map[string]func(io.Writer, []inline.Inlines) error{
	"tree": writeTree,
	"text": writeText,
	"yaml": writeYAML,
	"json": writeJSON,
}

func usage(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: md2tree [-f format] [--max-depth n] [--collapse-code] [--config file] [file...]\n")
	flags.PrintDefaults()
}

func main() {
	log.SetPrefix("md2tree: ")
	log.SetFlags(0)

	flags := pflag.NewFlagSet("md2tree", pflag.ContinueOnError)
	flags.Usage = func() { usage(flags) }
	cfg, err := parseFlags(flags, os.Args[1:])
	if err != nil {
		if err != pflag.ErrHelp {
			log.Print(err)
		}
		os.Exit(2)
	}

	exit := 0
	var texts []string
	if flags.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		texts = append(texts, string(data))
	} else {
		for _, file := range flags.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			texts = append(texts, string(data))
		}
	}
	if err := run(os.Stdout, cfg, texts); err != nil {
		log.Print(err)
		exit = 1
	}
	os.Exit(exit)
}

// parseFlags parses args into a config.
// Settings in a --config file apply unless a flag overrides them.
func parseFlags(flags *pflag.FlagSet, args []string) (config, error) {
	var (
		cfg        config
		configFile string
	)
	flags.StringVarP(&cfg.Format, "format", "f", "tree", "output `format`: tree, text, yaml, or json")
	flags.IntVar(&cfg.MaxDepth, "max-depth", inline.DefaultMaxDepth, "maximum nesting of emphasis and links")
	flags.BoolVar(&cfg.CollapseCode, "collapse-code", false, "collapse white space in code spans")
	flags.StringVar(&configFile, "config", "", "read default settings from YAML `file`")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	if configFile != "" {
		file, err := loadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		if !flags.Changed("format") && file.Format != "" {
			cfg.Format = file.Format
		}
		if !flags.Changed("max-depth") && file.MaxDepth != 0 {
			cfg.MaxDepth = file.MaxDepth
		}
		if !flags.Changed("collapse-code") {
			cfg.CollapseCode = file.CollapseCode
		}
	}

	if _, ok := formats[cfg.Format]; !ok {
		return cfg, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.MaxDepth < 1 {
		return cfg, fmt.Errorf("invalid max depth %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// loadConfig reads a YAML config file.
func loadConfig(file string) (config, error) {
	var cfg config
	data, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// run parses texts and writes their paragraphs to w in the configured format.
func run(w io.Writer, cfg config, texts []string) error {
	p := &inline.Parser{MaxDepth: cfg.MaxDepth, CollapseCodeSpace: cfg.CollapseCode}
	var paras []string
	for _, text := range texts {
		paras = append(paras, splitParagraphs(text)...)
	}
	refs := new(inline.Refs)
	paras = collectRefs(p, paras, refs)

	var out []inline.Inlines
	for _, para := range paras {
		out = append(out, p.ParseInlines(para, 0, refs))
	}
	if err := formats[cfg.Format](w, out); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Format, err)
	}
	return nil
}

// splitParagraphs splits text into paragraphs separated by blank lines.
// Each paragraph keeps its internal line endings but not its final one.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var (
		paras []string
		lines []string
	)
	flush := func() {
		if len(lines) > 0 {
			paras = append(paras, strings.Join(lines, "\n"))
			lines = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, strings.TrimLeft(line, " \t"))
	}
	flush()
	return paras
}

// collectRefs adds the link reference definitions at the start
// of each paragraph to refs and returns the paragraphs that remain
// after the definitions are removed.
func collectRefs(p *inline.Parser, paras []string, refs *inline.Refs) []string {
	var out []string
	for _, para := range paras {
		pos := 0
		for {
			end, ok := p.ParseReference(para, pos, refs)
			if !ok {
				break
			}
			pos = end
		}
		if pos < len(para) {
			out = append(out, para[pos:])
		}
	}
	return out
}

func writeTree(w io.Writer, paras []inline.Inlines) error {
	for i, para := range paras {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, inline.Dump(para)); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, paras []inline.Inlines) error {
	for _, para := range paras {
		if _, err := io.WriteString(w, inline.ToText(para)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, paras []inline.Inlines) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toNodes(paras)); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, paras []inline.Inlines) error {
	data, err := json.MarshalIndent(toNodes(paras), "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
