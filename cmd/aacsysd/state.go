package main

import (
	"encoding/json"
	"fmt"

	"github.com/aacio/aacsys"
	"github.com/aacio/aacsys/errors"
	"github.com/aacio/aacsys/x/currency"
	"github.com/aacio/aacsys/x/params"
	"github.com/aacio/aacsys/x/producers"
	"gopkg.in/urfave/cli.v1"
)

// stateDump is the printed system contract state.
type stateDump struct {
	ChainID   string                     `json:"chain_id"`
	Version   int64                      `json:"version"`
	Params    *params.EconomicParameters `json:"params"`
	Schedule  *aacsys.ProducerSchedule   `json:"schedule"`
	Producers []*producers.Producer      `json:"producers"`
	Balances  []*currency.Balance        `json:"balances"`
}

func stateCmd(ctx *cli.Context) error {
	n, _, err := openNode(ctx)
	if err != nil {
		return err
	}
	defer n.Close()

	db := n.app.DeliverStore()
	id, err := n.app.LatestVersion()
	if err != nil {
		return err
	}
	dump := stateDump{ChainID: n.app.ChainID(), Version: id.Version}

	if dump.Params, err = params.LoadOrDefault(db); err != nil {
		return err
	}
	if dump.Schedule, err = producers.CurrentSchedule(db); err != nil {
		return err
	}

	it, err := producers.NewBucket().ByVotes(db)
	if err != nil {
		return err
	}
	defer it.Release()
	for {
		p, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return err
		}
		dump.Producers = append(dump.Producers, p)
	}

	bal, err := currency.NewBucket().All(db)
	if err != nil {
		return err
	}
	defer bal.Release()
	for {
		obj, err := bal.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return err
		}
		b, ok := obj.Value().(*currency.Balance)
		if !ok {
			return errors.WithType(errors.ErrType, obj.Value())
		}
		dump.Balances = append(dump.Balances, b)
	}

	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
