package pypack

import (
	"context"
	"io/fs"
	"strings"
)

// CollectModules walks fsys and returns one entry per module file, reading
// file contents eagerly into memory.
//
// Paths map to dotted module names: "a/b/c.py" becomes "a.b.c" and
// "a/__init__.py" becomes "a". A top-level __init__.py has no name and is
// skipped, as are __pycache__ directories and files whose derived name
// would contain an empty dotted component.
//
// The default ".py" suffix can be changed with CollectWithSuffix to gather
// compiled-module trees laid out in parallel to their sources.
func CollectModules(ctx context.Context, fsys fs.FS, opts ...CollectOption) ([]Entry, error) {
	cfg := collectConfig{suffix: DefaultSuffix}
	for _, opt := range opts {
		opt(&cfg)
	}

	var entries []Entry
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "__pycache__" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, cfg.suffix) {
			return nil
		}

		name, ok := moduleName(path, cfg.suffix, cfg.prefix)
		if !ok {
			cfg.log().Debug("skipped module file", "path", path)
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Name: name, Data: data})
		cfg.log().Debug("collected module", "name", name, "path", path, "size", len(data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.log().Info("collected modules", "count", len(entries), "suffix", cfg.suffix)
	return entries, nil
}

// moduleName derives the dotted module name for a slash-separated file path.
// ok is false when the path yields no importable name.
func moduleName(path, suffix, prefix string) (string, bool) {
	stem := strings.TrimSuffix(path, suffix)
	parts := strings.Split(stem, "/")
	if last := len(parts) - 1; parts[last] == "__init__" {
		parts = parts[:last]
	}
	if len(parts) == 0 {
		return "", false
	}
	for _, p := range parts {
		if p == "" {
			return "", false
		}
	}
	name := strings.Join(parts, ".")
	if prefix != "" {
		name = prefix + "." + name
	}
	return name, true
}
