package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuulee/PyOxidizer/pyembed"
	"github.com/cuulee/PyOxidizer/pypack"
)

var getCmd = &cobra.Command{
	Use:   "get <blob-file> <module>",
	Short: "Write one module payload to stdout",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	blob, err := pypack.ReadBlobFile(args[0])
	if err != nil {
		return err
	}
	m, err := pyembed.ParseModulesBlob(blob)
	if err != nil {
		return err
	}
	data, ok := m.Get(args[1])
	if !ok {
		return fmt.Errorf("%w: %s", pyembed.ErrNotFound, args[1])
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
