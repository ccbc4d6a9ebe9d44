package mailer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderpost_sends_total",
		Help: "Total confirmation send attempts by outcome.",
	}, []string{"outcome"})

	sendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderpost_send_duration_seconds",
		Help:    "Time spent handing a rendered message to the transport.",
		Buckets: prometheus.DefBuckets,
	})
)
