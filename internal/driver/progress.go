package driver

import "time"

// Stage describes a phase of checking one file.
type Stage string

const (
	// StageRead is loading the file from disk.
	StageRead Stage = "read"
	// StageLines covers the line rules and the blank-run rule.
	StageLines Stage = "lines"
	// StageParse is lexing and parsing.
	StageParse Stage = "parse"
	// StageTree covers the syntax tree rules.
	StageTree Stage = "tree"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being checked.
	StatusWorking Status = "working"
	// StatusDone indicates the file is done.
	StatusDone Status = "done"
	// StatusError indicates the file failed to load or parse.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	// Violations is set on StatusDone.
	Violations int
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use when the check runs with more than one job.
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

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
