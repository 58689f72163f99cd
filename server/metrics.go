package server

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func setupMetrics(registerer prometheus.Registerer) *metrics {
	const prometheusLabelStatus = "status"

	m := &metrics{
		summaryVec: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "htmlcheck_web_request_durations_seconds",
				Help:       "request duration including reading the file",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelStatus},
		),
		counterVec: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlcheck_web_requests_total",
				Help: "number of requests by status code",
			},
			[]string{prometheusLabelStatus},
		),
	}
	registerer.MustRegister(
		m.summaryVec,
		m.counterVec,
	)
	return m
}
