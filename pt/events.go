package pt

// EventKind tags which variant an Event carries.
type EventKind int

const (
	EventPercent EventKind = iota
	EventSampleDone
	EventCompleted
)

// Event is the progress union delivered to an EventSink during a
// render: Percent fires as buckets drain within a sample iteration,
// SampleDone fires once per completed iteration, and Completed fires
// exactly once at the very end.
type Event struct {
	Kind    EventKind
	Percent uint8
	Sample  uint32
	Stats   Stats
}

// EventSink receives render progress. Percent events are delivered
// concurrently from whichever worker goroutine just drained a bucket
// within a sample iteration; SampleDone and Completed are always
// delivered from the Render call's own goroutine, after that
// iteration's workers have joined. A sink must be safe to call
// concurrently for Percent.
type EventSink func(Event)

func percentEvent(p uint8) Event { return Event{Kind: EventPercent, Percent: p} }

func sampleDoneEvent(s uint32) Event { return Event{Kind: EventSampleDone, Sample: s} }

func completedEvent(stats Stats) Event { return Event{Kind: EventCompleted, Stats: stats} }
