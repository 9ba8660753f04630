package event

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	HandlerFailedType       Type = "HANDLER_FAILED"
	MalformedType           Type = "MALFORMED_EVENT"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type HandlerFailed struct {
	Job string
	Err error
}

type Malformed struct {
	Original Type
	Reason   error
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}
