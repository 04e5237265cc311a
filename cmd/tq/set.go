package main

import (
	"fmt"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	path, valArg := args[0], args[1]
	srcFile := "-"
	if len(args) > 2 {
		srcFile = args[2]
	}

	var v *doc.Value
	if cfg.String {
		v = doc.FromString(valArg).WithDecor(" ", "")
	} else {
		v, err = parse.ParseValue([]byte(valArg))
		if err != nil {
			return fmt.Errorf("error parsing value %q: %w (use -s for a string)", valArg, err)
		}
	}

	d, err := readDoc(srcFile)
	if err != nil {
		return err
	}
	it, err := d.EntryPath(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}
	if it.IsTable() || it.IsArrayOfTables() {
		return fmt.Errorf("cannot overwrite %s at %s", it.Kind(), path)
	}
	if old := it.AsValue(); old != nil {
		v.WithDecor(old.Decor().Prefix(), old.Decor().Suffix())
	}
	*it = doc.ItemOfValue(v)
	return writeResult(cfg.MainConfig, cc, d, srcFile)
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a path", cli.ErrUsage)
	}
	path := args[0]
	srcFile := "-"
	if len(args) > 1 {
		srcFile = args[1]
	}
	d, err := readDoc(srcFile)
	if err != nil {
		return err
	}
	removed, err := d.RemovePath(path)
	if err != nil {
		return fmt.Errorf("error removing %s: %w", path, err)
	}
	if removed == nil {
		return fmt.Errorf("%s: no such path", path)
	}
	return writeResult(cfg.MainConfig, cc, d, srcFile)
}
