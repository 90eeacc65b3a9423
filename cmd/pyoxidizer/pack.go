package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cuulee/PyOxidizer/pypack"
)

const (
	sourceBlobName = "py_modules.bin"
	codeBlobName   = "pyc_modules.bin"
)

var (
	packConfigPath  string
	packOutDir      string
	packCompression string
	packPrefix      string
	packPycDir      string
)

var packHeadline = color.New(color.FgGreen, color.Bold)

func init() {
	packCmd.Flags().StringVarP(&packConfigPath, "config", "c", "", "pack configuration file (overrides the other flags)")
	packCmd.Flags().StringVarP(&packOutDir, "out", "o", "build", "output directory for artifacts")
	packCmd.Flags().StringVar(&packCompression, "compression", "none", "artifact compression (none|zstd)")
	packCmd.Flags().StringVar(&packPrefix, "prefix", "", "dotted prefix for collected module names")
	packCmd.Flags().StringVar(&packPycDir, "pyc-dir", "", "parallel tree of compiled modules for the code blob")
}

var packCmd = &cobra.Command{
	Use:   "pack [flags] [dir]",
	Short: "Pack a source tree into modules blobs",
	Long: `Pack collects module files from a source tree, encodes them into a source
blob and a code blob, and writes both plus a JSON manifest to the output
directory. With --config, roots come from a TOML file instead; roots with
suffix ".pyc" feed the code blob, all others feed the source blob.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger()

	var (
		sourceEntries []pypack.Entry
		codeEntries   []pypack.Entry
		compression   pypack.Compression
		outDir        string
		err           error
	)

	if packConfigPath != "" {
		cfg, cfgErr := pypack.LoadConfig(packConfigPath)
		if cfgErr != nil {
			return cfgErr
		}
		if compression, err = pypack.ParseCompression(cfg.Pack.Compression); err != nil {
			return err
		}
		outDir = cfg.Pack.OutDir

		for _, root := range cfg.Roots {
			suffix := root.Suffix
			if suffix == "" {
				suffix = pypack.DefaultSuffix
			}
			opts := []pypack.CollectOption{
				pypack.CollectWithLogger(log),
				pypack.CollectWithSuffix(suffix),
			}
			if root.Prefix != "" {
				opts = append(opts, pypack.CollectWithPrefix(root.Prefix))
			}
			entries, collectErr := pypack.CollectModules(ctx, os.DirFS(root.Path), opts...)
			if collectErr != nil {
				return fmt.Errorf("collect %s: %w", root.Path, collectErr)
			}
			if suffix == ".pyc" {
				codeEntries = append(codeEntries, entries...)
			} else {
				sourceEntries = append(sourceEntries, entries...)
			}
		}
	} else {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if compression, err = pypack.ParseCompression(packCompression); err != nil {
			return err
		}
		outDir = packOutDir

		opts := []pypack.CollectOption{pypack.CollectWithLogger(log)}
		if packPrefix != "" {
			opts = append(opts, pypack.CollectWithPrefix(packPrefix))
		}
		if sourceEntries, err = pypack.CollectModules(ctx, os.DirFS(dir), opts...); err != nil {
			return fmt.Errorf("collect %s: %w", dir, err)
		}
		if packPycDir != "" {
			codeOpts := []pypack.CollectOption{
				pypack.CollectWithLogger(log),
				pypack.CollectWithSuffix(".pyc"),
			}
			if packPrefix != "" {
				codeOpts = append(codeOpts, pypack.CollectWithPrefix(packPrefix))
			}
			if codeEntries, err = pypack.CollectModules(ctx, os.DirFS(packPycDir), codeOpts...); err != nil {
				return fmt.Errorf("collect %s: %w", packPycDir, err)
			}
		}
	}

	sourceBlob, err := pypack.Encode(sourceEntries)
	if err != nil {
		return err
	}
	codeBlob, err := pypack.Encode(codeEntries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	sourceName := artifactName(sourceBlobName, compression)
	codeName := artifactName(codeBlobName, compression)
	if err := pypack.WriteBlobFile(filepath.Join(outDir, sourceName), sourceBlob, compression); err != nil {
		return err
	}
	if err := pypack.WriteBlobFile(filepath.Join(outDir, codeName), codeBlob, compression); err != nil {
		return err
	}

	manifest := &pypack.Manifest{
		Version: pypack.ManifestVersion,
		Source:  pypack.NewBlobDescriptor(sourceName, sourceBlob, len(sourceEntries)),
		Code:    pypack.NewBlobDescriptor(codeName, codeBlob, len(codeEntries)),
	}
	manifestPath := filepath.Join(outDir, pypack.DefaultManifestName)
	if err := pypack.WriteManifestFile(manifestPath, manifest); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	packHeadline.Fprintf(out, "packed %d source and %d code modules\n", len(sourceEntries), len(codeEntries))
	fmt.Fprintf(out, "  %s  %s\n", filepath.Join(outDir, sourceName), formatSize(int64(len(sourceBlob))))
	fmt.Fprintf(out, "  %s  %s\n", filepath.Join(outDir, codeName), formatSize(int64(len(codeBlob))))
	fmt.Fprintf(out, "  %s\n", manifestPath)
	return nil
}

// artifactName appends the compression suffix to a base blob file name.
func artifactName(base string, c pypack.Compression) string {
	if c == pypack.CompressionZstd {
		return base + ".zst"
	}
	return base
}
