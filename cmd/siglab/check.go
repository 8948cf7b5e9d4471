package main

import (
	"fmt"
	"os"

	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/siglang"
	"github.com/reusee/siglab/vars"
)

func init() {
	cmds.Define("check", cmds.Func(func(path string, outPath *string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		graph, err := siglang.Compile(path, string(content), siglang.Options{})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d nodes\n", path, len(graph.Nodes()))

		if out := vars.DerefOrZero(outPath); out != "" {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := graph.Save(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}

		os.Exit(0)
		return nil
	}).Desc("compile a script, optionally writing the graph to a file"))
}
