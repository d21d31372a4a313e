// btfdump decodes a BTF blob and re-emits it as text, JSON, YAML, or a
// C-FFI binding source file.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/flier/go-btf/pkg/btf"
	"github.com/flier/go-btf/pkg/btf/binding"
	"github.com/flier/go-btf/pkg/btf/format"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:      "btfdump",
		Usage:     "decode a BTF blob and re-emit it as text, JSON, YAML, or a C-FFI binding",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text, json, json-pretty, yaml, rust",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output path (stdout if absent)",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "base BTF file for split-BTF mode (binding emission only)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("btfdump failed")
		os.Exit(1)
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	if c.NArg() < 1 {
		return cli.Exit("expected a FILE argument", 1)
	}
	path := c.Args().Get(0)

	local, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", path, err), 1)
	}

	var baseBytes []byte
	if basePath := c.String("base"); basePath != "" {
		baseBytes, err = os.ReadFile(basePath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("reading base %s: %v", basePath, err), 1)
		}
	}

	log.Debug().Str("file", path).Str("format", c.String("format")).Msg("decoding")

	spec, err := btf.Load(baseBytes, local)
	if err != nil {
		return cli.Exit(fmt.Sprintf("decoding %s: %v", path, err), 1)
	}

	out := os.Stdout
	if outPath := c.String("output"); outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("creating %s: %v", outPath, err), 1)
		}
		defer f.Close()
		out = f
	}

	switch c.String("format") {
	case "text":
		fmt.Fprint(out, format.Text(spec.Base, spec.Local))
	case "json":
		b, err := format.JSON(spec.Base, spec.Local)
		if err != nil {
			return cli.Exit(fmt.Sprintf("encoding json: %v", err), 1)
		}
		out.Write(b)
	case "json-pretty":
		b, err := format.JSONPretty(spec.Base, spec.Local)
		if err != nil {
			return cli.Exit(fmt.Sprintf("encoding json: %v", err), 1)
		}
		out.Write(b)
	case "yaml":
		b, err := format.YAML(spec.Base, spec.Local)
		if err != nil {
			return cli.Exit(fmt.Sprintf("encoding yaml: %v", err), 1)
		}
		out.Write(b)
	case "rust":
		src, err := binding.Emit(spec.Base, spec.Local, binding.Options{})
		if err != nil {
			return cli.Exit(fmt.Sprintf("emitting binding: %v", err), 1)
		}
		fmt.Fprint(out, src)
	default:
		return cli.Exit(fmt.Sprintf("unknown format: %s", c.String("format")), 1)
	}

	return nil
}
