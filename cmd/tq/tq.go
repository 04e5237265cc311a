package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/encode"
	"github.com/toml-format/go-tomled/parse"

	"github.com/scott-cotton/cli"
)

func tqMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.T, cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -t[oml] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readDoc parses the TOML document named by arg, with "-" or "" meaning
// standard input.
func readDoc(arg string) (*doc.Document, error) {
	var rd io.Reader
	if arg == "" || arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	d, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", displayName(arg), err)
	}
	return d, nil
}

func displayName(arg string) string {
	if arg == "" || arg == "-" {
		return "stdin"
	}
	return arg
}

// writeResult writes an edited document either back to its source file
// (-i) or to the command output in the selected format.
func writeResult(cfg *MainConfig, cc *cli.Context, d *doc.Document, srcFile string) error {
	if cfg.InPlace {
		if srcFile == "" || srcFile == "-" {
			return fmt.Errorf("%w: -i requires a file argument", cli.ErrUsage)
		}
		return os.WriteFile(srcFile, []byte(encode.MustString(d)), 0644)
	}
	return encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...)
}
