package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/app"
	"github.com/naoina/toml"
	"github.com/tendermint/tendermint/libs/log"
	"gopkg.in/urfave/cli.v1"
)

const (
	configFileName  = "config.toml"
	genesisFileName = "genesis.json"
	dataDirName     = "data"
	storeName       = "aacsys"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Config is the node configuration file content.
type Config struct {
	Node    NodeConfig
	System  SystemConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type NodeConfig struct {
	// DataDir is relative to the home directory unless absolute.
	DataDir string
	// Debug exposes internal error messages in action results.
	Debug bool
}

type SystemConfig struct {
	SystemAccount string
	TokenAccount  string
}

type LogConfig struct {
	// Level is one of debug, info, error or none.
	Level string
}

type MetricsConfig struct {
	// ListenAddr enables the prometheus endpoint when not empty.
	ListenAddr string
}

func defaultConfig() Config {
	return Config{
		Node: NodeConfig{DataDir: dataDirName},
		System: SystemConfig{
			SystemAccount: string(app.DefaultSystemAccount),
			TokenAccount:  string(app.DefaultSystemAccount),
		},
		Log: LogConfig{Level: "info"},
	}
}

// systemConfig returns the system contract assembly described by the
// configuration.
func (c *Config) systemConfig() (app.SystemConfig, error) {
	conf := app.DefaultSystemConfig()
	conf.SystemAccount = aacsys.AccountName(c.System.SystemAccount)
	conf.TokenAccount = aacsys.AccountName(c.System.TokenAccount)
	if err := conf.SystemAccount.Validate(); err != nil {
		return conf, fmt.Errorf("system account: %s", err)
	}
	if err := conf.TokenAccount.Validate(); err != nil {
		return conf, fmt.Errorf("token account: %s", err)
	}
	return conf, nil
}

func (c *Config) dataDir(home string) string {
	if filepath.IsAbs(c.Node.DataDir) {
		return c.Node.DataDir
	}
	return filepath.Join(home, c.Node.DataDir)
}

func loadConfig(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = fmt.Errorf("%s, %s", file, err)
	}
	if err != nil {
		return fmt.Errorf("TOML config file error: %v", err)
	}
	return nil
}

func saveConfig(file string, cfg Config) error {
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(file, out, 0644)
}

func configFile(ctx *cli.Context) string {
	if f := ctx.GlobalString(configFlag.Name); f != "" {
		return f
	}
	return filepath.Join(ctx.GlobalString(homeFlag.Name), configFileName)
}

// makeConfig reads the configuration file, falling back to the defaults
// if there is none.
func makeConfig(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()
	file := configFile(ctx)
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return cfg, nil
	}
	if err := loadConfig(file, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg Config) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "aacsysd")
	opt, err := log.AllowLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt), nil
}
