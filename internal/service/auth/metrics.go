package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "roadworks_auth_logins_total",
	Help: "Login attempts by authentication path and outcome",
}, []string{"path", "outcome"})

var reconciledTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "roadworks_auth_reconciled_total",
	Help: "Local credentials refreshed after a successful cloud login",
})
