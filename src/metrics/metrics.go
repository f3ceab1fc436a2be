package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onevent-go/onevent/src/binder"
)

const namespace = "onevent"

// Collector counts binder activity. It implements binder.Observer.
type Collector struct {
	bound         prometheus.Counter
	handlers      prometheus.Counter
	activations   *prometheus.CounterVec
	deactivations *prometheus.CounterVec
	fired         *prometheus.CounterVec
}

var _ binder.Observer = (*Collector)(nil)

func NewCollector() *Collector {
	return &Collector{
		bound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bound_targets_total",
			Help:      "Targets processed by Bind.",
		}),
		handlers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handlers_total",
			Help:      "Handler attributes discovered by Bind.",
		}),
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activations_total",
			Help:      "Listener subscriptions, by event type.",
		}, []string{"type"}),
		deactivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deactivations_total",
			Help:      "Listener removals, by event type.",
		}, []string{"type"}),
		fired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_invocations_total",
			Help:      "Handler runs, by event type and result.",
		}, []string{"type", "result"}),
	}
}

// Register adds every metric to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{c.bound, c.handlers, c.activations, c.deactivations, c.fired} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) Bound(ctl *binder.Control) {
	c.bound.Inc()
	c.handlers.Add(float64(len(ctl.Bindings())))
}

func (c *Collector) Activated(_, physical string) {
	c.activations.WithLabelValues(physical).Inc()
}

func (c *Collector) Deactivated(_, physical string) {
	c.deactivations.WithLabelValues(physical).Inc()
}

func (c *Collector) Fired(_, physical string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.fired.WithLabelValues(physical, result).Inc()
}
