package report

// Status describes where a report file is in the loading pipeline.
type Status string

const (
	// StatusQueued indicates the file is waiting to be read.
	StatusQueued Status = "queued"
	// StatusReading indicates the file is being read and decoded.
	StatusReading Status = "reading"
	// StatusDone indicates the file was decoded.
	StatusDone Status = "done"
	// StatusError indicates the file failed to load.
	StatusError Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File   string
	Status Status
	Count  int
	Err    error
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func notify(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
