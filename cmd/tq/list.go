package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/gomap"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = expr.Compile(cfg.Where, expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("error compiling -where %q: %w", cfg.Where, err)
		}
	}
	for _, arg := range args {
		d, err := readDoc(arg)
		if err != nil {
			return err
		}
		rows, err := listRows(d, path)
		if err != nil {
			return fmt.Errorf("error listing %s in %s: %w", path, displayName(arg), err)
		}
		if err := writeRows(cc.Out, rows, prog); err != nil {
			return err
		}
	}
	return nil
}

// listRows flattens the element at path into one row per member: tables
// of an array of tables, elements of an array, or key/value rows of a
// table.
func listRows(d *doc.Document, path string) ([]map[string]any, error) {
	var it *doc.Item
	if path == "." {
		it = d.RootItem()
	} else {
		var err error
		it, err = d.Find(path)
		if err != nil {
			return nil, err
		}
	}
	if it == nil || it.IsNone() {
		return nil, nil
	}
	switch {
	case it.IsArrayOfTables():
		a := it.AsArrayOfTables()
		rows := make([]map[string]any, 0, a.Len())
		for _, el := range a.Iter() {
			rows = append(rows, gomap.FromTable(el))
		}
		return rows, nil
	case it.IsArray():
		a := it.AsArray()
		rows := make([]map[string]any, 0, a.Len())
		for i, el := range a.Iter() {
			rows = append(rows, map[string]any{"index": i, "value": gomap.FromValue(el)})
		}
		return rows, nil
	case it.IsTable():
		t := it.AsTable()
		rows := make([]map[string]any, 0, t.Len())
		for key, el := range t.Iter() {
			if el.IsNone() {
				continue
			}
			rows = append(rows, map[string]any{"key": key, "value": gomap.FromItem(el)})
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%s holds a single value; use get", path)
	}
}

func writeRows(w io.Writer, rows []map[string]any, prog *vm.Program) error {
	for _, row := range rows {
		if prog != nil {
			out, err := expr.Run(prog, row)
			if err != nil {
				return fmt.Errorf("error evaluating -where: %w", err)
			}
			if keep, ok := out.(bool); !ok || !keep {
				continue
			}
		}
		b, err := json.Marshal(row)
		if err != nil {
			return err
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
