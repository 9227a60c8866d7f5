package engine

import "time"

// WatchDiagnostics starts a goroutine, in the pattern of the teacher's GTK
// frontend event loop (a time.Ticker driving a select), that polls the
// engine's counters every interval and logs any growth since the last
// poll through e.log. dispatch, running on the audio callback thread,
// only ever increments these counters (spec.md §5, §7 "logged
// out-of-band"); this goroutine is where the actual log line gets
// formatted and written. The returned func stops the goroutine.
func (e *Engine) WatchDiagnostics(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var lastUnknown, lastDropped, lastMalformed uint64
		for {
			select {
			case <-ticker.C:
				if u := e.diag.UnknownParams.Load(); u != lastUnknown {
					e.log.Warn("unknown or malformed param events", "new", u-lastUnknown, "total", u)
					lastUnknown = u
				}
				if d := e.diag.DroppedEvents.Load(); d != lastDropped {
					e.log.Warn("events dropped, queue full", "new", d-lastDropped, "total", d)
					lastDropped = d
				}
				if m := e.diag.MalformedEvents.Load(); m != lastMalformed {
					e.log.Warn("malformed events enqueued", "new", m-lastMalformed, "total", m)
					lastMalformed = m
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
