package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aacio/aacsys/app"
	"github.com/aacio/aacsys/x/rewards"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
)

func printResult(w io.Writer, res app.Result, label string) {
	if res.Code != 0 {
		fmt.Fprintf(w, "%s: code=%d log=%q\n", label, res.Code, res.Log)
		return
	}
	fmt.Fprintf(w, "%s: ok", label)
	if len(res.Tags) != 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(res.Tags, " "))
	}
	fmt.Fprintln(w)
}

// serveMetrics exposes the reward metrics on the /metrics endpoint.
func serveMetrics(endpoint string, logger log.Logger) {
	reg := prometheus.NewRegistry()
	for _, c := range rewards.Collectors() {
		if err := reg.Register(c); err != nil {
			logger.Error("cannot register metric", "err", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		logger.Info("Metrics server starts", "endpoint", endpoint)
		defer logger.Info("Metrics server is stopped")
		if err := http.ListenAndServe(endpoint, mux); err != nil {
			logger.Info("metrics server", "err", err)
		}
	}()
}
