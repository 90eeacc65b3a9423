package pyembed

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuulee/PyOxidizer/internal/testutil"
)

// mustBuild constructs a registry or fails the test.
func mustBuild(tb testing.TB, sourceBlob, codeBlob []byte, opts ...Option) *Registry {
	tb.Helper()
	reg, err := Build(sourceBlob, codeBlob, opts...)
	require.NoError(tb, err, "Build failed")
	return reg
}

// testRegistry builds a registry with a small, representative module tree:
// app and app.models have source and code, app.models.user is source-only,
// and boot is code-only.
func testRegistry(tb testing.TB) *Registry {
	tb.Helper()
	sourceBlob := testutil.BuildBlob(tb, []testutil.BlobEntry{
		{Name: "app", Data: []byte("# app init")},
		{Name: "app.models", Data: []byte("# models init")},
		{Name: "app.models.user", Data: []byte("class User: pass")},
	})
	codeBlob := testutil.BuildBlob(tb, []testutil.BlobEntry{
		{Name: "app", Data: []byte{0x01}},
		{Name: "app.models", Data: []byte{0x02}},
		{Name: "boot", Data: []byte{0x03}},
	})
	return mustBuild(tb, sourceBlob, codeBlob)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("valid blobs", func(t *testing.T) {
		t.Parallel()
		reg := testRegistry(t)
		assert.Equal(t, 4, reg.Len())
	})

	t.Run("empty blobs", func(t *testing.T) {
		t.Parallel()
		empty := testutil.BuildBlob(t, nil)
		reg := mustBuild(t, empty, empty)
		assert.Equal(t, 0, reg.Len())
		assert.False(t, reg.HasModule("anything"))
		assert.False(t, reg.IsPackage("anything"))
	})

	t.Run("with logger", func(t *testing.T) {
		t.Parallel()
		empty := testutil.BuildBlob(t, nil)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		reg := mustBuild(t, empty, empty, WithLogger(logger))
		assert.NotNil(t, reg)
	})

	t.Run("source blob too small", func(t *testing.T) {
		t.Parallel()
		_, err := Build(nil, testutil.BuildBlob(t, nil))
		require.ErrorIs(t, err, ErrTooSmall)
		assert.Contains(t, err.Error(), "source blob")
	})

	t.Run("code blob malformed", func(t *testing.T) {
		t.Parallel()
		_, err := Build(testutil.BuildBlob(t, nil), testutil.BuildRawBlob(t, 5, nil))
		require.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "code blob")
	})
}

func TestBuildDigestVerification(t *testing.T) {
	t.Parallel()

	sourceBlob := testutil.BuildBlob(t, []testutil.BlobEntry{
		{Name: "m", Data: []byte("source")},
	})
	codeBlob := testutil.BuildBlob(t, nil)

	t.Run("matching digests", func(t *testing.T) {
		t.Parallel()
		reg := mustBuild(t, sourceBlob, codeBlob,
			WithSourceDigest(digest.FromBytes(sourceBlob)),
			WithCodeDigest(digest.FromBytes(codeBlob)),
		)
		assert.True(t, reg.HasModule("m"))
	})

	t.Run("source digest mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Build(sourceBlob, codeBlob,
			WithSourceDigest(digest.FromBytes([]byte("something else"))),
		)
		require.ErrorIs(t, err, ErrDigestMismatch)
		assert.Contains(t, err.Error(), "source blob")
	})

	t.Run("code digest mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := Build(sourceBlob, codeBlob,
			WithCodeDigest(digest.FromBytes([]byte("something else"))),
		)
		require.ErrorIs(t, err, ErrDigestMismatch)
		assert.Contains(t, err.Error(), "code blob")
	})

	t.Run("invalid expected digest", func(t *testing.T) {
		t.Parallel()
		_, err := Build(sourceBlob, codeBlob, WithSourceDigest("not-a-digest"))
		assert.Error(t, err)
	})
}

func TestRegistryGetSource(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		data, err := reg.GetSource("app.models.user")
		require.NoError(t, err)
		assert.Equal(t, []byte("class User: pass"), data)
	})

	t.Run("code-only module", func(t *testing.T) {
		t.Parallel()
		_, err := reg.GetSource("boot")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()
		_, err := reg.GetSource("no.such.module")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRegistryGetCode(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		data, err := reg.GetCode("boot")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x03}, data)
	})

	t.Run("source-only module", func(t *testing.T) {
		t.Parallel()
		_, err := reg.GetCode("app.models.user")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()
		_, err := reg.GetCode("no.such.module")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRegistryHasModule(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	tests := []struct {
		name     string
		module   string
		expected bool
	}{
		{name: "source and code", module: "app", expected: true},
		{name: "source only", module: "app.models.user", expected: true},
		{name: "code only", module: "boot", expected: true},
		{name: "absent", module: "missing", expected: false},
		{name: "package is not a module", module: "app.models.user.extra", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, reg.HasModule(tc.module))
		})
	}
}

func TestRegistryIsPackage(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	tests := []struct {
		name     string
		module   string
		expected bool
	}{
		{name: "root package", module: "app", expected: true},
		{name: "nested package", module: "app.models", expected: true},
		{name: "leaf module", module: "app.models.user", expected: false},
		{name: "top-level module", module: "boot", expected: false},
		{name: "unknown name", module: "ghost", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, reg.IsPackage(tc.module))
		})
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	names := slices.Collect(reg.Names())
	assert.Equal(t, []string{"app", "app.models", "app.models.user", "boot"}, names)
	assert.Equal(t, len(names), reg.Len())
}

func TestRegistryConcurrentQueries(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, _ = reg.GetSource("app.models.user")
				_, _ = reg.GetCode("boot")
				_ = reg.HasModule("app")
				_ = reg.IsPackage("app.models")
				for range reg.Names() {
					break
				}
			}
		}()
	}
	wg.Wait()
}
