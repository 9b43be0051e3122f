package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "aacsysd-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, configFileName)

	cfg := defaultConfig()
	cfg.Metrics.ListenAddr = "127.0.0.1:9090"
	cfg.Log.Level = "debug"
	require.NoError(t, saveConfig(file, cfg))

	var loaded Config
	require.NoError(t, loadConfig(file, &loaded))
	require.Equal(t, cfg, loaded)
}

func TestConfigUnknownField(t *testing.T) {
	dir, err := ioutil.TempDir("", "aacsysd-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, configFileName)

	require.NoError(t, ioutil.WriteFile(file, []byte("[Node]\nDataDirectory = \"x\"\n"), 0644))
	var cfg Config
	err = loadConfig(file, &cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "DataDirectory")
}

func TestSystemConfig(t *testing.T) {
	cfg := defaultConfig()
	conf, err := cfg.systemConfig()
	require.NoError(t, err)
	require.Equal(t, "aacio", string(conf.SystemAccount))

	cfg.System.TokenAccount = "Not Valid"
	_, err = cfg.systemConfig()
	require.Error(t, err)
}

func TestDataDir(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, filepath.Join("/home/x", dataDirName), cfg.dataDir("/home/x"))
	cfg.Node.DataDir = "/var/lib/aacsys"
	require.Equal(t, "/var/lib/aacsys", cfg.dataDir("/home/x"))
}
