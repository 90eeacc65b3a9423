package pypack

import (
	"context"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCollect collects modules or fails the test.
func mustCollect(tb testing.TB, fsys fstest.MapFS, opts ...CollectOption) []Entry {
	tb.Helper()
	entries, err := CollectModules(context.Background(), fsys, opts...)
	require.NoError(tb, err, "CollectModules failed")
	return entries
}

// entryNames returns the sorted names of the given entries.
func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

func TestCollectModules(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"app/__init__.py":        {Data: []byte("# app")},
		"app/models/__init__.py": {Data: []byte("# models")},
		"app/models/user.py":     {Data: []byte("class User: pass")},
		"app/views.py":           {Data: []byte("def index(): pass")},
		"scripts/run.py":         {Data: []byte("print('hi')")},
		"README.md":              {Data: []byte("docs")},
	}

	entries := mustCollect(t, fsys)
	assert.Equal(t, []string{
		"app",
		"app.models",
		"app.models.user",
		"app.views",
		"scripts.run",
	}, entryNames(entries))

	for _, e := range entries {
		if e.Name == "app.models.user" {
			assert.Equal(t, []byte("class User: pass"), e.Data)
		}
	}
}

func TestCollectModulesSkips(t *testing.T) {
	t.Parallel()

	t.Run("top-level init", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"__init__.py": {Data: []byte("# unreachable")},
			"mod.py":      {Data: []byte("x = 1")},
		}
		entries := mustCollect(t, fsys)
		assert.Equal(t, []string{"mod"}, entryNames(entries))
	})

	t.Run("pycache directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"pkg/__pycache__/mod.cpython-312.py": {Data: []byte("stale")},
			"pkg/mod.py":                         {Data: []byte("fresh")},
			"pkg/__init__.py":                    {Data: []byte("")},
		}
		entries := mustCollect(t, fsys)
		assert.Equal(t, []string{"pkg", "pkg.mod"}, entryNames(entries))
	})

	t.Run("suffix-only file", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			".py":    {Data: []byte("nameless")},
			"mod.py": {Data: []byte("x = 1")},
		}
		entries := mustCollect(t, fsys)
		assert.Equal(t, []string{"mod"}, entryNames(entries))
	})
}

func TestCollectModulesSuffix(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"app/__init__.pyc": {Data: []byte{0x01}},
		"app/views.pyc":    {Data: []byte{0x02}},
		"app/views.py":     {Data: []byte("ignored")},
	}

	entries := mustCollect(t, fsys, CollectWithSuffix(".pyc"))
	assert.Equal(t, []string{"app", "app.views"}, entryNames(entries))
}

func TestCollectModulesPrefix(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"util.py": {Data: []byte("")},
	}

	entries := mustCollect(t, fsys, CollectWithPrefix("vendor.lib"))
	assert.Equal(t, []string{"vendor.lib.util"}, entryNames(entries))
}

func TestCollectModulesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{
		"mod.py": {Data: []byte("x = 1")},
	}
	_, err := CollectModules(ctx, fsys)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestModuleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		prefix   string
		expected string
		ok       bool
	}{
		{name: "plain module", path: "a/b/c.py", expected: "a.b.c", ok: true},
		{name: "package init", path: "a/__init__.py", expected: "a", ok: true},
		{name: "nested init", path: "a/b/__init__.py", expected: "a.b", ok: true},
		{name: "top-level module", path: "m.py", expected: "m", ok: true},
		{name: "top-level init", path: "__init__.py", ok: false},
		{name: "empty component", path: "a/.py", ok: false},
		{name: "with prefix", path: "m.py", prefix: "vendor", expected: "vendor.m", ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := moduleName(tc.path, ".py", tc.prefix)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
