package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBlocks = `[
	{
		"header": {"Producer": "prod1", "Timestamp": 1000},
		"actions": [
			{"code": "aacio", "name": "regproducer", "authorization": ["prod1"],
			 "data": {"Producer": "prod1", "ProducerKey": "AQ==", "URL": "https://prod1"}}
		]
	},
	{
		"header": {"Producer": "prod1", "Timestamp": 1001},
		"actions": [
			{"code": "aacio", "name": "claimrewards", "authorization": ["prod1"], "data": {"Owner": "prod1"}},
			{"code": "aacio", "name": "claimrewards", "authorization": ["prod1"], "data": {"Owner": "prod1"}},
			{"code": "aacio", "name": "nothandled", "authorization": ["prod1"]}
		],
		"inline": [
			{"sender": "alice", "code": "aacio", "name": "claimrewards", "authorization": ["prod1"], "data": {"Owner": "prod1"}}
		]
	}
]`

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	require.NoError(t, a.Run(append([]string{"aacsysd"}, args...)))
	return out.String()
}

func TestInitReplayState(t *testing.T) {
	home, err := ioutil.TempDir("", "aacsysd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	out := run(t, "--home", home, "init", "--chain-id", "test-chain")
	require.Contains(t, out, "Generated config file")
	require.Contains(t, out, "Generated genesis file")

	out = run(t, "--home", home, "init")
	require.Contains(t, out, "Found genesis file")

	// keep the test output quiet
	cfg := defaultConfig()
	cfg.Log.Level = "none"
	require.NoError(t, saveConfig(filepath.Join(home, configFileName), cfg))

	blocks := filepath.Join(home, "blocks.json")
	require.NoError(t, ioutil.WriteFile(blocks, []byte(testBlocks), 0644))

	out = run(t, "--home", home, "replay", blocks)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"onblock prod1: ok",
		"aacio::regproducer: ok",
		lines[2],
		"onblock prod1: ok",
		"aacio::claimrewards: ok [claim.owner=prod1 claim.amount=30000]",
		lines[5],
		"aacio::nothandled: ok",
		lines[7],
		lines[8],
	}, lines)
	require.True(t, strings.HasPrefix(lines[2], "committed block 1000 version=2 "))
	require.True(t, strings.HasPrefix(lines[5], "aacio::claimrewards: code=302 "))
	require.True(t, strings.HasPrefix(lines[7], "aacio::claimrewards: code=300 "))
	require.True(t, strings.HasPrefix(lines[8], "committed block 1001 version=3 "))

	out = run(t, "--home", home, "state")
	require.Contains(t, out, `"chain_id": "test-chain"`)
	require.Contains(t, out, `"version": 3`)
	require.Contains(t, out, `"owner": "prod1"`)
	require.Contains(t, out, `"last_rewards_claim": 1001`)
	require.Contains(t, out, `"amount": 30000`)
	require.Contains(t, out, `"amount": 999970000`)

	out = run(t, "version")
	require.NotEmpty(t, strings.TrimSpace(out))
}

func TestReplayRequiresFile(t *testing.T) {
	home, err := ioutil.TempDir("", "aacsysd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	a := newApp()
	a.Writer = ioutil.Discard
	require.Error(t, a.Run([]string{"aacsysd", "--home", home, "replay"}))
}
