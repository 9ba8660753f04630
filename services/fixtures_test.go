package services

import (
	"log/slog"
	"room-bot/domain"
	"time"

	"github.com/mama165/sdk-go/logs"
)

var (
	bot    = domain.Contact{ID: "bot", Name: "ding-bot"}
	alice  = domain.Contact{ID: "alice", Name: "Alice"}
	carol  = domain.Contact{ID: "carol", Name: "Carol"}
	dave   = domain.Contact{ID: "dave", Name: "Dave"}
	bruce  = domain.Contact{ID: "bruce", Name: "Bruce LEE", Ready: true}
	dingID = domain.RoomID("r1")
)

func testPolicy() Policy {
	return Policy{
		TriggerWord:   "ding",
		RoomPrefix:    "ding",
		HelperName:    "Bruce LEE",
		EvictionGrace: 10 * time.Second,
	}
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func loggedIn(account domain.Contact) *domain.State {
	state := domain.NewState()
	state.Login(domain.Session{Account: account, StartedAt: time.Now()})
	return state
}
