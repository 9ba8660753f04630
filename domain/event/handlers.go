package event

// Handler Each kind of event has his own handler
// Based on the Chain of responsibility pattern
type Handler interface {
	Handle(event Event)
}

// Recorder is the telemetry backend the handlers report to.
type Recorder interface {
	ObserveEvent(t Type, scope Scope)
	ObserveMalformed(original Type)
	ObserveWorkerRestart(worker string)
	ObserveHandlerFailure(job string)
	ObserveChannelCapacity(channel string, capacity, length int)
}
