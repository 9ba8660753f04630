package observability

import (
	"room-bot/domain/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roombot"

// Policy decision outcomes.
const (
	OutcomeOwnerInvited   = "owner_invited"
	OutcomeForeignInvited = "foreign_invited"
	OutcomeIgnored        = "ignored"
	OutcomeAlreadyMember  = "already_member"
	OutcomeMemberAdded    = "member_added"
	OutcomeMisuseEvicted  = "misuse_evicted"
	OutcomeRoomCreated    = "room_created"
)

// Eviction results.
const (
	EvictionRemoved     = "removed"
	EvictionAlreadyGone = "already_gone"
	EvictionFailed      = "failed"
	EvictionCancelled   = "cancelled"
	EvictionRescheduled = "rescheduled"
)

// Metrics owns a private registry so tests and the debug server never
// collide with the global default registerer.
type Metrics struct {
	registry        *prometheus.Registry
	events          *prometheus.CounterVec
	malformed       *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	evictions       *prometheus.CounterVec
	messages        *prometheus.CounterVec
	handlerFailures *prometheus.CounterVec
	workerRestarts  *prometheus.CounterVec
	channelLength   *prometheus.GaugeVec
	channelCapacity *prometheus.GaugeVec
}

var _ event.Recorder = (*Metrics)(nil)

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Platform events accepted by the router.",
		}, []string{"type", "scope"}),
		malformed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_events_total",
			Help:      "Platform events dropped because their payload failed validation.",
		}, []string{"type"}),
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_decisions_total",
			Help:      "Membership and trigger-word policy outcomes.",
		}, []string{"outcome"}),
		evictions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Deferred evictions by result.",
		}, []string{"result"}),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages handed to the platform.",
		}, []string{"result"}),
		handlerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Handler runs that returned an error or panicked.",
		}, []string{"job"}),
		workerRestarts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_restarts_total",
			Help:      "Supervised workers restarted after a panic.",
		}, []string{"worker"}),
		channelLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_length",
			Help:      "Buffered items waiting in an internal channel.",
		}, []string{"channel"}),
		channelCapacity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "channel_capacity",
			Help:      "Buffer size of an internal channel.",
		}, []string{"channel"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveEvent(t event.Type, scope event.Scope) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(string(t), string(scope)).Inc()
}

func (m *Metrics) ObserveMalformed(original event.Type) {
	if m == nil {
		return
	}
	m.malformed.WithLabelValues(string(original)).Inc()
}

func (m *Metrics) ObserveWorkerRestart(worker string) {
	if m == nil {
		return
	}
	m.workerRestarts.WithLabelValues(worker).Inc()
}

func (m *Metrics) ObserveHandlerFailure(job string) {
	if m == nil {
		return
	}
	m.handlerFailures.WithLabelValues(job).Inc()
}

func (m *Metrics) ObserveChannelCapacity(channel string, capacity, length int) {
	if m == nil {
		return
	}
	m.channelCapacity.WithLabelValues(channel).Set(float64(capacity))
	m.channelLength.WithLabelValues(channel).Set(float64(length))
}

func (m *Metrics) Decision(outcome string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Eviction(result string) {
	if m == nil {
		return
	}
	m.evictions.WithLabelValues(result).Inc()
}

func (m *Metrics) MessageSent(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.messages.WithLabelValues(result).Inc()
}

func (m *Metrics) Events() *prometheus.CounterVec { return m.events }
func (m *Metrics) Malformed() *prometheus.CounterVec { return m.malformed }
func (m *Metrics) Decisions() *prometheus.CounterVec { return m.decisions }
func (m *Metrics) Evictions() *prometheus.CounterVec { return m.evictions }
func (m *Metrics) Messages() *prometheus.CounterVec { return m.messages }
func (m *Metrics) HandlerFailures() *prometheus.CounterVec { return m.handlerFailures }
func (m *Metrics) WorkerRestarts() *prometheus.CounterVec { return m.workerRestarts }
func (m *Metrics) ChannelLength() *prometheus.GaugeVec { return m.channelLength }
