package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/app"
	"github.com/aacio/aacsys/store/iavl"
	"github.com/aacio/aacsys/x"
	"gopkg.in/urfave/cli.v1"
)

// Block is a block as read from a replay file.
type Block struct {
	Header  aacsys.BlockHeader `json:"header"`
	Actions []Action           `json:"actions"`
	// Inline actions are scheduled by the Sender account.
	Inline []InlineAction `json:"inline"`
}

// Action is an action envelope with a JSON encoded payload.
type Action struct {
	Code          aacsys.AccountName   `json:"code"`
	Name          aacsys.ActionName    `json:"name"`
	Authorization []aacsys.AccountName `json:"authorization"`
	Data          json.RawMessage      `json:"data"`
}

// InlineAction is an action scheduled by another action.
type InlineAction struct {
	Sender aacsys.AccountName `json:"sender"`
	Action
}

// node is an application opened on the home directory.
type node struct {
	app   *app.Application
	store iavl.CommitStore
	d     *app.Dispatcher
}

func openNode(ctx *cli.Context) (*node, Config, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, cfg, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, cfg, err
	}
	conf, err := cfg.systemConfig()
	if err != nil {
		return nil, cfg, err
	}

	home := ctx.GlobalString(homeFlag.Name)
	st := iavl.NewCommitStore(cfg.dataDir(home), storeName)
	d := app.SystemDispatcher(conf, x.EnvelopeAuth{})
	a, err := app.NewApplication(st, d, conf.SystemAccount)
	if err != nil {
		st.Close()
		return nil, cfg, err
	}
	a = a.WithLogger(logger).WithInit(app.SystemInitializer()).WithDebug(cfg.Node.Debug)
	return &node{app: a, store: st, d: d}, cfg, nil
}

func (n *node) Close() {
	n.store.Close()
}

// envelope encodes the JSON payload with the schema of the action.
func (n *node) envelope(act Action) (*aacsys.ActionEnvelope, error) {
	env := &aacsys.ActionEnvelope{
		Code:          act.Code,
		Name:          act.Name,
		Authorization: act.Authorization,
	}
	r, ok := n.d.Lookup(act.Code, act.Name)
	if !ok {
		// Nobody handles it, the payload is irrelevant.
		return env, nil
	}
	payload := r.NewAction()
	if len(act.Data) != 0 {
		if err := json.Unmarshal(act.Data, payload); err != nil {
			return nil, fmt.Errorf("%s::%s data: %s", act.Code, act.Name, err)
		}
	}
	data, err := payload.Marshal()
	if err != nil {
		return nil, err
	}
	env.Data = data
	return env, nil
}

func replayCmd(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected a single blocks file argument")
	}
	raw, err := ioutil.ReadFile(ctx.Args().First())
	if err != nil {
		return err
	}
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return fmt.Errorf("parse blocks: %s", err)
	}

	n, cfg, err := openNode(ctx)
	if err != nil {
		return err
	}
	defer n.Close()

	if cfg.Metrics.ListenAddr != "" {
		serveMetrics(cfg.Metrics.ListenAddr, n.app.Logger())
	}

	if n.app.ChainID() == "" {
		gen, err := app.LoadGenesis(filepath.Join(ctx.GlobalString(homeFlag.Name), genesisFileName))
		if err != nil {
			return err
		}
		if err := n.app.InitChain(gen); err != nil {
			return err
		}
		if _, err := n.app.Commit(); err != nil {
			return err
		}
	}

	w := ctx.App.Writer
	for _, b := range blocks {
		res, err := n.app.BeginBlock(b.Header)
		if err != nil {
			return fmt.Errorf("block %d: %s", b.Header.Timestamp, err)
		}
		printResult(w, n.app.ResultOf(res, nil), "onblock "+string(b.Header.Producer))

		for _, act := range b.Actions {
			env, err := n.envelope(act)
			if err != nil {
				return err
			}
			res, err := n.app.Deliver(env)
			printResult(w, n.app.ResultOf(res, err), string(act.Code)+"::"+string(act.Name))
		}
		for _, act := range b.Inline {
			env, err := n.envelope(act.Action)
			if err != nil {
				return err
			}
			res, err := n.app.DeliverInline(act.Sender, env)
			printResult(w, n.app.ResultOf(res, err), string(act.Code)+"::"+string(act.Name))
		}

		id, err := n.app.Commit()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "committed block %d version=%d hash=%X\n", int64(b.Header.Timestamp), id.Version, id.Hash)
	}
	return nil
}
