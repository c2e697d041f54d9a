package schedule

// Debouncer coalesces bursts of requests into one deferred run. At most one
// run is pending at any time.
type Debouncer struct {
	sched   Scheduler
	task    func()
	pending bool
	gen     uint64
}

// NewDebouncer creates a debouncer running task on sched
func NewDebouncer(sched Scheduler, task func()) *Debouncer {
	return &Debouncer{sched: sched, task: task}
}

// Request schedules the task unless a run is already pending. Returns true
// when a new run was scheduled.
func (d *Debouncer) Request() bool {
	if d.pending {
		return false
	}
	d.pending = true
	gen := d.gen
	d.sched.Defer(func() {
		if gen != d.gen || !d.pending {
			return
		}
		d.pending = false
		d.gen++
		d.task()
	})
	return true
}

// Cancel drops the pending run, if any
func (d *Debouncer) Cancel() {
	if d.pending {
		d.pending = false
		d.gen++
	}
}

// Pending reports whether a run is scheduled
func (d *Debouncer) Pending() bool {
	return d.pending
}
