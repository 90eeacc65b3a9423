package main

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cuulee/PyOxidizer/pypack"
)

var verifyOK = color.New(color.FgGreen)

var verifyCmd = &cobra.Command{
	Use:   "verify <manifest>",
	Short: "Verify blob artifacts against their manifest",
	Long: `Verify reads a pack manifest and checks each referenced artifact's
uncompressed content against its recorded digest and size.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	manifest, err := pypack.LoadManifestFile(args[0])
	if err != nil {
		return err
	}
	dir := filepath.Dir(args[0])

	out := cmd.OutOrStdout()
	for _, desc := range []pypack.BlobDescriptor{manifest.Source, manifest.Code} {
		blob, err := pypack.ReadBlobFile(filepath.Join(dir, desc.Path))
		if err != nil {
			return err
		}
		if err := desc.Verify(blob); err != nil {
			return err
		}
		verifyOK.Fprintf(out, "ok  %s  %s  %d modules\n", desc.Path, desc.Digest, desc.Modules)
	}
	return nil
}
