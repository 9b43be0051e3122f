package rewards

import "github.com/prometheus/client_golang/prometheus"

var (
	accruedBlocks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aacsys",
		Subsystem: "rewards",
		Name:      "accrued_blocks_total",
		Help:      "Number of blocks accounted by onblock.",
	})
	bucketFilled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aacsys",
		Subsystem: "rewards",
		Name:      "bucket_filled_total",
		Help:      "Amount added to the shared pool.",
	})
	claims = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aacsys",
		Subsystem: "rewards",
		Name:      "claims_total",
		Help:      "Number of reward claims by result.",
	}, []string{"result"})
	claimedAmount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aacsys",
		Subsystem: "rewards",
		Name:      "claimed_amount_total",
		Help:      "Amount paid out to producers.",
	})
)

// Collectors returns the metrics of this package, so that they can be
// registered with a prometheus registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{accruedBlocks, bucketFilled, claims, claimedAmount}
}
