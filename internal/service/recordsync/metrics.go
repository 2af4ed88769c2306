package recordsync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var documentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "roadworks_sync_documents_total",
	Help: "Documents handled by sync passes, by direction and result",
}, []string{"direction", "result"})

var duplicatesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "roadworks_sync_duplicates_total",
	Help: "Cloud documents mapped to more than one local report",
})

var passDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "roadworks_sync_pass_duration_seconds",
	Help:    "Duration of sync passes",
	Buckets: prometheus.DefBuckets,
}, []string{"direction"})
