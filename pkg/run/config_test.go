package run

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.smy.sh/pkg/testutil"
)

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile(t, "config.yaml",
		"module-dirs:\n  - /lib/one\n  - /lib/two\nno-history: true\ndb: /tmp/hist.db\n")

	cfg, err := loadConfig("config.yaml")
	if err != nil {
		t.Fatalf("loadConfig -> error %v", err)
	}
	want := Config{
		ModuleDirs: []string{"/lib/one", "/lib/two"},
		NoHistory:  true,
		DB:         "/tmp/hist.db",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loadConfig (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	dir := testutil.InTempDir(t)
	cfg, err := loadConfig(filepath.Join(dir, "nonexistent.yaml"))
	if err != nil {
		t.Errorf("loadConfig of missing file -> error %v", err)
	}
	if diff := cmp.Diff(Config{}, cfg); diff != "" {
		t.Errorf("loadConfig of missing file (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile(t, "config.yaml", ":\t:bad yaml::\n")
	if _, err := loadConfig("config.yaml"); err == nil {
		t.Errorf("loadConfig of invalid file -> no error")
	}
}

func TestConfigPath(t *testing.T) {
	if got := configPath("/explicit/path.yaml"); got != "/explicit/path.yaml" {
		t.Errorf("configPath with flag -> %q", got)
	}
	testutil.Setenv(t, "SMYTHONCONFIG", "/from/env.yaml")
	if got := configPath(""); got != "/from/env.yaml" {
		t.Errorf("configPath from env -> %q", got)
	}
}
