package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper isolates tests from Viper's package-level state.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	resetViper(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fel4.toml", cfg.Manifest)
	assert.Equal(t, "debug", cfg.DefaultProfile)
}

func TestLoad_ExplicitFile(t *testing.T) {
	resetViper(t)
	Init()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("manifest: build/fel4.toml\ndefault_profile: release\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/fel4.toml", cfg.Manifest)
	assert.Equal(t, "release", cfg.DefaultProfile)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	resetViper(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	resetViper(t)
	Init()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("manifest: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "fel4.toml", cfg.Manifest)
	assert.Equal(t, "debug", cfg.DefaultProfile)
	assert.Empty(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantErrs  int
		wantField string
	}{
		{
			name:     "valid",
			cfg:      &Config{Manifest: "fel4.toml", DefaultProfile: "release"},
			wantErrs: 0,
		},
		{
			name:     "empty fields are allowed",
			cfg:      &Config{},
			wantErrs: 0,
		},
		{
			name:      "bad profile",
			cfg:       &Config{DefaultProfile: "bench"},
			wantErrs:  1,
			wantField: "default_profile",
		},
		{
			name:      "null byte in manifest path",
			cfg:       &Config{Manifest: "fel4\x00.toml"},
			wantErrs:  1,
			wantField: "manifest",
		},
		{
			name:     "both invalid",
			cfg:      &Config{Manifest: ".", DefaultProfile: "bench"},
			wantErrs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			require.Len(t, errs, tt.wantErrs)
			if tt.wantField != "" {
				var fieldErr *FieldError
				require.ErrorAs(t, errs[0], &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	errs := Validate(nil)
	require.Len(t, errs, 1)
}
