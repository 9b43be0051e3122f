package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/app"
	"github.com/aacio/aacsys/x/currency"
	"github.com/aacio/aacsys/x/params"
	"gopkg.in/urfave/cli.v1"
)

// initialSupply is issued to the system account by a generated genesis, so
// that claimed rewards can be paid out.
const initialSupply = 1000000000

// initCmd writes the default configuration and a genesis file to the home
// directory. Existing files are kept.
func initCmd(ctx *cli.Context) error {
	home := ctx.GlobalString(homeFlag.Name)
	if err := os.MkdirAll(home, 0755); err != nil {
		return err
	}

	cfg := defaultConfig()
	file := configFile(ctx)
	if _, err := os.Stat(file); os.IsNotExist(err) {
		if err := saveConfig(file, cfg); err != nil {
			return fmt.Errorf("write config: %s", err)
		}
		fmt.Fprintln(ctx.App.Writer, "Generated config file", file)
	} else {
		if err := loadConfig(file, &cfg); err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, "Found config file", file)
	}

	genFile := filepath.Join(home, genesisFileName)
	if _, err := os.Stat(genFile); err == nil {
		fmt.Fprintln(ctx.App.Writer, "Found genesis file", genFile)
		return nil
	}
	gen, err := defaultGenesis(ctx.String(chainIDFlag.Name), cfg)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(genFile, raw, 0644); err != nil {
		return fmt.Errorf("write genesis: %s", err)
	}
	fmt.Fprintln(ctx.App.Writer, "Generated genesis file", genFile)
	return nil
}

func defaultGenesis(chainID string, cfg Config) (*app.Genesis, error) {
	conf, err := json.Marshal(map[string]interface{}{
		params.PkgName: params.DefaultParameters(),
	})
	if err != nil {
		return nil, err
	}
	balances, err := json.Marshal([]currency.Balance{
		{Owner: aacsys.AccountName(cfg.System.SystemAccount), Amount: initialSupply},
	})
	if err != nil {
		return nil, err
	}
	return &app.Genesis{
		ChainID:     chainID,
		GenesisTime: aacsys.AsUnixTime(time.Now()),
		AppState: map[string]json.RawMessage{
			"conf":     conf,
			"currency": balances,
		},
	}, nil
}
