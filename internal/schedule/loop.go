package schedule

// Scheduler defers work to a later tick of the control loop
type Scheduler interface {
	Defer(fn func())
}

// Loop is a cooperative task queue driven by explicit ticks. All tasks run on
// the goroutine calling Tick.
type Loop struct {
	queue []func()
}

// NewLoop creates an empty loop
func NewLoop() *Loop {
	return &Loop{}
}

// Defer queues fn for the next tick
func (l *Loop) Defer(fn func()) {
	if fn == nil {
		return
	}
	l.queue = append(l.queue, fn)
}

// Tick runs the tasks queued before the call. Tasks deferred while ticking
// wait for the next tick. Returns the number of tasks run.
func (l *Loop) Tick() int {
	batch := l.queue
	l.queue = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Drain ticks until the queue is empty or max ticks elapsed
func (l *Loop) Drain(max int) int {
	total := 0
	for i := 0; i < max && len(l.queue) > 0; i++ {
		total += l.Tick()
	}
	return total
}

// Pending returns the number of queued tasks
func (l *Loop) Pending() int {
	return len(l.queue)
}
