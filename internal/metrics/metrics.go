package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RepoOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalogue", Name: "repo_ops_total", Help: "Repository operations by outcome",
	}, []string{"op", "outcome"})
	RepoDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "catalogue", Name: "repo_op_seconds", Help: "Repository operation latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalogue", Name: "http_requests_total", Help: "Served API requests",
	}, []string{"route", "status"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "catalogue", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
	Entities = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "catalogue", Name: "entities", Help: "Rows per catalogue table",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(RepoOps, RepoDuration, HTTPRequests, DBPing, Entities)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

// ObserveRepoOp records one finished repository call. outcome is "ok",
// "not_found" or "error".
func ObserveRepoOp(op, outcome string, d time.Duration) {
	RepoOps.WithLabelValues(op, outcome).Inc()
	RepoDuration.WithLabelValues(op).Observe(d.Seconds())
}
