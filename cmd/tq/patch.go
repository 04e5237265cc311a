package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toml-format/go-tomled/gomap"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchBytes, err := patchArg(cfg, args[0])
	if err != nil {
		return err
	}
	srcFile := "-"
	if len(args) > 1 {
		srcFile = args[1]
	}
	d, err := readDoc(srcFile)
	if err != nil {
		return err
	}

	baseJSON, err := json.Marshal(gomap.FromDocument(d))
	if err != nil {
		return err
	}
	var patched []byte
	if cfg.Merge {
		patched, err = jsonpatch.MergePatch(baseJSON, patchBytes)
		if err != nil {
			return fmt.Errorf("error applying merge patch: %w", err)
		}
	} else {
		p, err := jsonpatch.DecodePatch(patchBytes)
		if err != nil {
			return fmt.Errorf("error decoding patch: %w", err)
		}
		patched, err = p.Apply(baseJSON)
		if err != nil {
			return fmt.Errorf("error applying patch: %w", err)
		}
	}
	var m map[string]any
	if err := json.Unmarshal(patched, &m); err != nil {
		return err
	}
	if err := gomap.Sync(d, m); err != nil {
		return fmt.Errorf("error writing patch result back: %w", err)
	}
	return writeResult(cfg.MainConfig, cc, d, srcFile)
}

// patchArg resolves the patch argument to its JSON bytes.  With -s the
// argument is the patch text itself; with -f it names a file; with
// neither, an existing file wins over a literal.
func patchArg(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: -s and -f conflict", cli.ErrUsage)
	}
	if cfg.String {
		return []byte(arg), nil
	}
	if cfg.File {
		return os.ReadFile(arg)
	}
	if _, err := os.Stat(arg); err == nil {
		return os.ReadFile(arg)
	}
	return []byte(arg), nil
}
