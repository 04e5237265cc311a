package main

import (
	"fmt"

	"github.com/toml-format/go-tomled/doc"

	"github.com/scott-cotton/cli"
)

func sortCmd(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: sort requires a path (\".\" for the root)", cli.ErrUsage)
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
	t := d.Root()
	if path != "." {
		it, err := d.Find(path)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", path, err)
		}
		if it == nil || !it.IsTable() {
			return fmt.Errorf("%s: not a table", path)
		}
		t = it.AsTable()
	}
	sortTable(t, cfg.Recurse)
	return writeResult(cfg.MainConfig, cc, d, srcFile)
}

func sortTable(t *doc.Table, recurse bool) {
	t.SortValues()
	if !recurse {
		return
	}
	for _, it := range t.Iter() {
		switch {
		case it.IsTable():
			sortTable(it.AsTable(), true)
		case it.IsArrayOfTables():
			for _, el := range it.AsArrayOfTables().Iter() {
				sortTable(el, true)
			}
		}
	}
}
