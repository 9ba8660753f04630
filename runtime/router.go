package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/runtime/workers"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

var _ contract.Worker = (*Router)(nil)

// Router consumes the platform event stream in order.
// Session changes are applied inline so a login is always visible to the
// events that follow it. Everything that talks to the platform is handed to
// the worker pool as a job.
type Router struct {
	log        *slog.Logger
	platform   contract.Platform
	state      *domain.State
	rooms      contract.IRoomService
	membership contract.IMembershipService
	trigger    contract.ITriggerService
	clock      clock.WithDelayedExecution
	warmup     time.Duration
	jobs       chan<- workers.Job
	telemetry  chan<- event.Event

	mu           sync.Mutex
	warmupTimer  clock.Timer
	warmupCancel context.CancelFunc
}

type RouterConfig struct {
	Platform   contract.Platform
	State      *domain.State
	Rooms      contract.IRoomService
	Membership contract.IMembershipService
	Trigger    contract.ITriggerService
	Clock      clock.WithDelayedExecution
	Warmup     time.Duration
	Jobs       chan<- workers.Job
	Telemetry  chan<- event.Event
}

func NewRouter(log *slog.Logger, cfg RouterConfig) *Router {
	return &Router{
		log:        log,
		platform:   cfg.Platform,
		state:      cfg.State,
		rooms:      cfg.Rooms,
		membership: cfg.Membership,
		trigger:    cfg.Trigger,
		clock:      cfg.Clock,
		warmup:     cfg.Warmup,
		jobs:       cfg.Jobs,
		telemetry:  cfg.Telemetry,
	}
}

func (r *Router) Run(ctx context.Context) error {
	events := r.platform.Events()
	for {
		select {
		case <-ctx.Done():
			r.stopWarmup()
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				r.log.Info("Platform event stream closed")
				r.stopWarmup()
				return nil
			}
			r.Route(ctx, evt)
		}
	}
}

// Route applies one event. It never blocks on a platform call.
func (r *Router) Route(ctx context.Context, evt event.Event) {
	if err := evt.Validate(); err != nil {
		r.log.Warn("Dropping malformed event", append(evt.Attrs(), "error", err)...)
		r.publish(event.New(event.MalformedType, event.Malformed{Original: evt.Type, Reason: err}))
		return
	}
	r.publish(evt)

	switch evt.Type {
	case event.SessionEstablishedType:
		r.onSessionEstablished(ctx, evt.Payload.(event.SessionEstablished))
	case event.SessionEndedType:
		r.onSessionEnded(evt.Payload.(event.SessionEnded))
	case event.SessionErrorType:
		r.log.Error("Platform session error", "error", evt.Payload.(event.SessionError).Err)
	default:
		if !r.state.Active() {
			r.log.Debug("No live session, ignoring event", evt.Attrs()...)
			return
		}
		r.routeSessionEvent(ctx, evt)
	}
}

func (r *Router) routeSessionEvent(ctx context.Context, evt event.Event) {
	switch evt.Type {
	case event.MessageReceivedType:
		payload := evt.Payload.(event.MessageReceived)
		r.log.Info(digest(payload))
		if r.state.IsSelf(payload.From.ID) {
			return
		}
		r.submit(ctx, workers.Job{
			Name:  "trigger.message",
			Attrs: evt.Attrs(),
			Run: func(ctx context.Context) error {
				return r.trigger.OnMessage(ctx, payload)
			},
		})
	case event.MembershipJoinedType:
		payload := evt.Payload.(event.MembershipJoined)
		if evt.Scope == event.GlobalScope {
			r.log.Info(fmt.Sprintf("Room %q got new member %s, invited by %s",
				payload.Room.Topic, payload.Invitee.Name, payload.Inviter.Name))
			return
		}
		r.submit(ctx, workers.Job{
			Name:  "membership.join",
			Attrs: evt.Attrs(),
			Run: func(ctx context.Context) error {
				return r.membership.OnJoin(ctx, payload)
			},
		})
	case event.MembershipLeftType:
		payload := evt.Payload.(event.MembershipLeft)
		if evt.Scope == event.GlobalScope {
			r.log.Info(fmt.Sprintf("Room %q lost member %s", payload.Room.Topic, payload.Leaver.Name))
			return
		}
		r.submit(ctx, workers.Job{
			Name:  "membership.leave",
			Attrs: evt.Attrs(),
			Run: func(ctx context.Context) error {
				return r.membership.OnLeave(ctx, payload)
			},
		})
	case event.TopicChangedType:
		payload := evt.Payload.(event.TopicChanged)
		if evt.Scope == event.GlobalScope {
			r.log.Info(fmt.Sprintf("Room %q topic changed from %q by %s",
				payload.Topic, payload.OldTopic, payload.Changer.Name))
			return
		}
		r.submit(ctx, workers.Job{
			Name:  "membership.topic",
			Attrs: evt.Attrs(),
			Run: func(ctx context.Context) error {
				return r.membership.OnTopic(ctx, payload)
			},
		})
	}
}

func (r *Router) onSessionEstablished(ctx context.Context, payload event.SessionEstablished) {
	session := *payload.Session
	r.log.Info(fmt.Sprintf("Logged in as %s", session.Account.Name), "account_id", session.Account.ID)
	r.state.Login(session)
	r.scheduleWarmup(ctx)
}

func (r *Router) onSessionEnded(payload event.SessionEnded) {
	r.log.Info(fmt.Sprintf("%s logged out", payload.Session.Account.Name))
	r.stopWarmup()
	r.state.Logout()
}

// scheduleWarmup locates the managed room once the platform had time to
// sync its contacts and rooms. A previous pending warm-up is replaced.
func (r *Router) scheduleWarmup(ctx context.Context) {
	r.stopWarmup()

	warmupCtx, cancel := context.WithCancel(ctx)
	timer := r.clock.AfterFunc(r.warmup, func() {
		r.submit(warmupCtx, workers.Job{
			Name: "room.locate",
			Run: func(ctx context.Context) error {
				if !r.state.Active() {
					return nil
				}
				_, err := r.rooms.LocateOrObserve(ctx)
				return err
			},
		})
	})

	r.mu.Lock()
	r.warmupTimer = timer
	r.warmupCancel = cancel
	r.mu.Unlock()
}

func (r *Router) stopWarmup() {
	r.mu.Lock()
	timer, cancel := r.warmupTimer, r.warmupCancel
	r.warmupTimer, r.warmupCancel = nil, nil
	r.mu.Unlock()

	if timer != nil && timer.Stop() {
		r.log.Debug("Pending warm-up stopped")
	}
	if cancel != nil {
		cancel()
	}
}

func (r *Router) submit(ctx context.Context, job workers.Job) {
	select {
	case <-ctx.Done():
		r.log.Debug("Context done, dropping job", "job", job.Name)
	case r.jobs <- job:
	}
}

func (r *Router) publish(evt event.Event) {
	if r.telemetry == nil {
		return
	}
	select {
	case r.telemetry <- evt:
	default:
		r.log.Debug("Telemetry channel full, event not counted", "event", evt.Type)
	}
}

// digest renders a received message as [topic]<sender>:content.
func digest(msg event.MessageReceived) string {
	topic := ""
	if msg.Room != nil {
		topic = fmt.Sprintf("[%s]", msg.Room.Topic)
	}
	return fmt.Sprintf("%s<%s>:%s", topic, msg.From.Name, msg.Content)
}
