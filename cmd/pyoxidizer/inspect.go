package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cuulee/PyOxidizer/pyembed"
	"github.com/cuulee/PyOxidizer/pypack"
)

var inspectHeadline = color.New(color.FgCyan, color.Bold)

var inspectCmd = &cobra.Command{
	Use:   "inspect <blob-file>",
	Short: "List the modules in a blob artifact",
	Long: `Inspect parses a blob artifact (raw or zstd-compressed) and lists every
module with its payload size, marking names that act as packages.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	blob, err := pypack.ReadBlobFile(args[0])
	if err != nil {
		return err
	}
	m, err := pyembed.ParseModulesBlob(blob)
	if err != nil {
		return err
	}
	packages := pyembed.DerivePackages(m.Names())

	out := cmd.OutOrStdout()
	inspectHeadline.Fprintf(out, "%s: %d modules, %d packages, %s\n",
		args[0], m.Len(), len(packages), formatSize(int64(len(blob))))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tKIND")
	for _, name := range slices.Sorted(m.Names()) {
		data, _ := m.Get(name)
		kind := "module"
		if _, ok := packages[name]; ok {
			kind = "package"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(data), kind)
	}
	return w.Flush()
}
