//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"room-bot/domain"
	"room-bot/domain/event"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Platform is the chat platform collaborator. Every call may fail; none of them
// guarantees more than "accepted". Lookups return nil without error when nothing
// matches.
type Platform interface {
	// Events delivers global events and, for watched rooms, their room-scoped copies.
	Events() <-chan event.Event
	FindRoom(ctx context.Context, pattern domain.NamePattern) (*domain.Room, error)
	FindContact(ctx context.Context, name string) (*domain.Contact, error)
	IsMember(ctx context.Context, roomID domain.RoomID, contactID domain.ContactID) (bool, error)
	CreateRoom(ctx context.Context, contacts []domain.Contact, nameHint string) (*domain.Room, error)
	SetTopic(ctx context.Context, roomID domain.RoomID, topic string) error
	AddMember(ctx context.Context, roomID domain.RoomID, contactID domain.ContactID) error
	RemoveMember(ctx context.Context, roomID domain.RoomID, contactID domain.ContactID) error
	Send(ctx context.Context, message domain.Message) error
	// WatchRoom attaches the join, leave and topic observers of a room.
	WatchRoom(ctx context.Context, roomID domain.RoomID) error
}

// IRegistry remembers which rooms already have observers attached.
type IRegistry interface {
	Observe(roomID domain.RoomID) bool
	IsObserved(roomID domain.RoomID) bool
	Forget(roomID domain.RoomID)
	Observed() []domain.RoomID
}

type IEvictionScheduler interface {
	Schedule(room domain.Room, invitee domain.Contact, after time.Duration) domain.EvictionKey
	Cancel(key domain.EvictionKey) bool
	Pending() []domain.EvictionKey
}

type IMessageDispatcher interface {
	Send(ctx context.Context, content string, to *domain.Contact, room *domain.RoomID) error
}

type IRoomService interface {
	LocateOrObserve(ctx context.Context) (*domain.Room, error)
	CreateManagedRoom(ctx context.Context, requester domain.Contact) (*domain.Room, error)
	FindOrCreate(ctx context.Context, requester domain.Contact) (domain.Provision, error)
}

type IMembershipService interface {
	OnJoin(ctx context.Context, evt event.MembershipJoined) error
	OnLeave(ctx context.Context, evt event.MembershipLeft) error
	OnTopic(ctx context.Context, evt event.TopicChanged) error
}

type ITriggerService interface {
	OnMessage(ctx context.Context, evt event.MessageReceived) error
}
