package pkg

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	metricNamespace = "jobsubmit"

	MetricSectionsInjected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "sections_injected",
		Help:      "The count of auto-generated command sections injected into task roles, by kind.",
	},
		[]string{"kind"})
	MetricSectionsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "sections_removed",
		Help:      "The count of auto-generated command sections stripped from task roles, by kind.",
	},
		[]string{"kind"})
	MetricRedactedSecrets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Name:      "redacted_secrets_total",
		Help:      "The count of decompositions that found the secrets block redacted.",
	})
)

func StartMetricsServer(port int) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{})) // Uses a clean instrumentation free handler
		prometheus.Unregister(collectors.NewGoCollector())                                              // Unregisters the go metrics
		prometheusAddress := fmt.Sprintf(":%d", port)
		log.Info().Msgf("Starting metrics service on '%s/metrics'", prometheusAddress)
		err := http.ListenAndServe(prometheusAddress, mux)
		if err != nil {
			log.Error().Err(err).Msgf("metrics service returned error")
		}
	}()
}
