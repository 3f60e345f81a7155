// Command sirenctl parses and previews post bodies from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"siren-api/api/dto/mappers"
	"siren-api/core/appurl"
	"siren-api/core/format"
	"siren-api/core/interfaces"
	"siren-api/core/render"
	"siren-api/infrastructure/logger/structured"
	"siren-api/infrastructure/render/terminal"
)

const version = "1.0.0"

// CLI defines the command-line interface for sirenctl.
type CLI struct {
	// Global flags
	Strict   bool   `help:"Fail on markup the parser does not cover"`
	Scheme   string `default:"feditext" help:"Scheme of rewritten mention and hashtag links"`
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level for diagnostics on stderr"`

	Parse   ParseCmd   `cmd:"" help:"Print the parsed post as JSON"`
	Render  RenderCmd  `cmd:"" help:"Print a terminal preview of the post"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// app carries what commands need after flags are parsed.
type app struct {
	service *render.Service
	in      io.Reader
	out     io.Writer
}

// ParseCmd prints the attributed text of a post.
type ParseCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"HTML file to read (default: stdin)"`
}

func (c *ParseCmd) Run(a *app) error {
	raw, err := a.read(c.File)
	if err != nil {
		return err
	}

	text, err := a.service.ParseE(raw)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(mappers.ToParseResponse(text))
}

// RenderCmd prints a formatted post.
type RenderCmd struct {
	File   string  `arg:"" optional:"" type:"existingfile" help:"HTML file to read (default: stdin)"`
	Style  string  `default:"body" help:"Base text style (${styles})"`
	Indent float64 `default:"17" help:"Indent of one nesting level in points"`
	ANSI   bool    `name:"ansi" help:"Style the output with terminal colors"`
	Raw    bool    `help:"Show shortened URLs in full"`
}

func (c *RenderCmd) Run(a *app) error {
	style, ok := format.TextStyleNamed(c.Style)
	if !ok {
		return fmt.Errorf("unknown text style %q", c.Style)
	}

	raw, err := a.read(c.File)
	if err != nil {
		return err
	}

	display := a.service.Render(raw, render.RenderOptions{
		Style:      style,
		IndentUnit: c.Indent,
		Present:    !c.Raw,
	})

	preview := terminal.New(a.out, c.ANSI, c.Indent).Render(display)
	_, err = fmt.Fprintln(a.out, preview)
	return err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	_, err := fmt.Fprintf(a.out, "sirenctl %s\n", version)
	return err
}

func (a *app) read(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func run(args []string, in io.Reader, out, errOut io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sirenctl"),
		kong.Description("Parse and preview federated social media post bodies"),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
		kong.Vars{"styles": strings.Join(format.TextStyleNames(), ", ")},
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := appurl.ValidateScheme(cli.Scheme); err != nil {
		return err
	}

	logger := structured.New(structured.Options{Level: cli.LogLevel, Format: "text", Output: errOut})
	service := render.NewService(
		interfaces.Dependencies{Logger: logger},
		render.WithConfig(render.Config{Strict: cli.Strict, LinkScheme: cli.Scheme}),
	)

	return ctx.Run(&app{service: service, in: in, out: out})
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sirenctl: %v\n", err)
		os.Exit(1)
	}
}
