package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classtrack", Name: "mutations_total", Help: "Applied state mutations",
	}, []string{"op"})
	MutationErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classtrack", Name: "mutation_errors_total", Help: "Rejected mutations",
	})
	PersistErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "classtrack", Name: "persist_errors_total", Help: "Snapshot save failures",
	})
	SnapshotSave = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "classtrack", Name: "snapshot_save_seconds", Help: "Snapshot save latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Mutations, MutationErrors, PersistErrors, SnapshotSave)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveSnapshotSave(d time.Duration) { SnapshotSave.Observe(d.Seconds()) }
