package httpext

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var resolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "httpext",
		Name:      "resolutions_total",
		Help:      "Resolver outcomes by kind.",
	},
	[]string{"outcome"},
)

// observeOutcome records the result of a resolution. Success counts as
// "ok"; failures count under their kind name. Resolvers themselves stay
// pure, so only the Do helpers call this.
func observeOutcome(err error) {
	resolutionsTotal.WithLabelValues(outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var es *Error[string]
	if errors.As(err, &es) {
		return es.Kind.String()
	}
	var eb *Error[[]byte]
	if errors.As(err, &eb) {
		return eb.Kind.String()
	}
	return "unknown"
}
