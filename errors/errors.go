package errors

import "fmt"

// Policy failures. Every one of them is terminal for the single event occurrence
// that produced it and is never surfaced to end users.
var (
	ErrLookupFailed             = fmt.Errorf("platform lookup failed")
	ErrHelperNotFound           = fmt.Errorf("helper contact not found")
	ErrCreationFailed           = fmt.Errorf("room creation failed")
	ErrMembershipMutationFailed = fmt.Errorf("membership mutation failed")
	ErrMalformedEvent           = fmt.Errorf("malformed event")
)

var (
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrNoSession      = fmt.Errorf("no live session")
	ErrSendFailed     = fmt.Errorf("message send failed")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrHandlerPanic   = fmt.Errorf("handler panic")
	ErrInvalidConfig  = fmt.Errorf("invalid configuration")
	ErrUnknownCommand = fmt.Errorf("unknown console command")
	ErrUnknownContact = fmt.Errorf("unknown contact")
	ErrUnknownRoom    = fmt.Errorf("unknown room")
)

// Local platform rejections.
var (
	ErrRoomTooSmall  = fmt.Errorf("a room needs at least two contacts besides the bot")
	ErrAlreadyMember = fmt.Errorf("contact already in room")
	ErrNotMember     = fmt.Errorf("contact not in room")
	ErrLoggedOut     = fmt.Errorf("platform session is not logged in")
)
