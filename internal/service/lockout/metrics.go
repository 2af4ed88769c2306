package lockout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var failuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "roadworks_lockout_failures_total",
	Help: "Failed login attempts recorded against accounts",
})

var blocksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "roadworks_lockout_blocks_total",
	Help: "Accounts that reached the failed-attempt threshold",
})
