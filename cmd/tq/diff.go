package main

import (
	"fmt"
	"os"

	"github.com/toml-format/go-tomled/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	ad, err := readDoc(args[0])
	if err != nil {
		return err
	}
	bd, err := readDoc(args[1])
	if err != nil {
		return err
	}
	a, b := encode.MustString(ad), encode.MustString(bd)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	if cfg.Semantic {
		diffs = dmp.DiffCleanupSemantic(diffs)
	}
	if diffColor(cfg.MainConfig, cc) {
		_, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs)))
		return err
	}
	patches := dmp.PatchMake(a, diffs)
	_, err = cc.Out.Write([]byte(dmp.PatchToText(patches)))
	return err
}

func diffColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
