// Package metrics exposes Prometheus collectors for the RSVP service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rsvp"

// Registry is the Prometheus registry for all service metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// AppInfo exposes build information as labels; the value is always 1.
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application version information (always set to 1, version info in labels)",
	},
	[]string{"version", "commit", "store_driver"},
)

// StoreAvailable is 1 when the store connected at startup and 0 in degraded mode.
var StoreAvailable = promauto.With(Registry).NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_available",
		Help:      "Whether the store connection was established at startup (1) or the service runs degraded (0)",
	},
)

// RSVPsCreated counts stored RSVPs by attendance.
var RSVPsCreated = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of RSVPs stored",
	},
	[]string{"attendance"},
)

// RSVPDuplicates counts submissions rejected because the name already exists.
var RSVPDuplicates = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicates_total",
		Help:      "Total number of RSVP submissions rejected as duplicate names",
	},
)

// NotificationsTotal counts organizer notification emails by outcome.
var NotificationsTotal = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of new-RSVP notification emails by result",
	},
	[]string{"result"},
)

// PanelLogins counts panel login attempts by result.
var PanelLogins = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panel_logins_total",
		Help:      "Total number of panel login attempts by result",
	},
	[]string{"result"},
)

// Init records build information.
func Init(version, commit, storeDriver string) {
	AppInfo.WithLabelValues(version, commit, storeDriver).Set(1)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
