package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/avltree/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Impl:  config.ImplHeap,
		Check: config.CheckConfig{Size: 10, Seed: 1},
		Bench: config.BenchConfig{Size: 100, Every: 10},
	}
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_Invalid_ReturnsError(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		mutate func(*config.Config)
		exp    error
	}{
		{"impl", func(c *config.Config) { c.Impl = "list" }, config.ErrInvalidImpl},
		{"size", func(c *config.Config) { c.Check.Size = 0 }, config.ErrInvalidSize},
		{"bench size", func(c *config.Config) { c.Bench.Size = -1 }, config.ErrInvalidBenchSize},
		{"every", func(c *config.Config) { c.Bench.Every = 0 }, config.ErrInvalidEvery},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.exp)
		})
	}
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", "", nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultImpl, cfg.Impl)
	assert.Equal(t, config.DefaultSize, cfg.Check.Size)
	assert.Equal(t, int64(config.DefaultSeed), cfg.Check.Seed)
	assert.Equal(t, config.DefaultBenchSize, cfg.Bench.Size)
	assert.Equal(t, config.DefaultEvery, cfg.Bench.Every)
	assert.Equal(t, config.DefaultLogFormat, cfg.Log.Format)
}

func TestLoadConfig_FileEnvAndFlags(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "pqcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
impl: heap
check:
  size: 25
  seed: 3
bench:
  every: 7
`), 0o600))
	t.Setenv("PQCHECK_BENCH_SIZE", "500")

	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flags.Int("size", config.DefaultSize, "")
	flags.Int64("seed", config.DefaultSeed, "")
	flags.String("impl", config.DefaultImpl, "")
	require.NoError(t, flags.Parse([]string{"--seed", "42"}))

	cfg, err := config.Load(path, "check", flags)
	require.NoError(t, err)
	assert.Equal(t, config.ImplHeap, cfg.Impl)
	assert.Equal(t, 25, cfg.Check.Size)
	assert.Equal(t, int64(42), cfg.Check.Seed)
	assert.Equal(t, 500, cfg.Bench.Size)
	assert.Equal(t, 7, cfg.Bench.Every)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "pqcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("impl: list\n"), 0o600))
	_, err := config.Load(path, "", nil)
	require.ErrorIs(t, err, config.ErrInvalidImpl)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	require.Error(t, err)
}
