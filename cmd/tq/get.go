package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/toml-format/go-tomled/doc"
	"github.com/toml-format/go-tomled/encode"
	"github.com/toml-format/go-tomled/gomap"
	"github.com/toml-format/go-tomled/token"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readDoc(arg)
		if err != nil {
			return err
		}
		it, err := d.Find(path)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", path, displayName(arg), err)
		}
		if it == nil || it.IsNone() {
			// absent paths print nothing
			continue
		}
		if err := renderItem(cfg.MainConfig, cc.Out, path, it); err != nil {
			return err
		}
	}
	return nil
}

// renderItem writes one resolved item in the selected output format.
// TOML output keeps the item's stored text; JSON and YAML go through
// the plain-Go projection.
func renderItem(cfg *MainConfig, w io.Writer, path string, it *doc.Item) error {
	fmat := cfg.outFmt()
	switch {
	case fmat.IsJSON():
		b, err := json.MarshalIndent(gomap.FromItem(it), "", "  ")
		if err != nil {
			return err
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case fmat.IsYAML():
		v, err := gomap.FromItemOrdered(it)
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	switch {
	case it.IsValue():
		if err := encode.EncodeValue(it.AsValue(), w, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	case it.IsTable():
		return encode.Encode(doc.NewDocumentOf(it.AsTable()), w, cfg.encOpts(w)...)
	case it.IsArrayOfTables():
		out := doc.NewDocument()
		steps, err := doc.ParsePath(path)
		if err != nil {
			return err
		}
		key := "result"
		if n := len(steps); n > 0 && !steps[n-1].IsIndex {
			key = steps[n-1].Key
		}
		slot, err := out.Root().Entry(token.QuoteKey(key))
		if err != nil {
			return err
		}
		*slot = doc.ItemOfArrayOfTables(it.AsArrayOfTables())
		return encode.Encode(out, w, cfg.encOpts(w)...)
	}
	return nil
}
