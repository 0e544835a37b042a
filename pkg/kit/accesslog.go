package kit

import (
	"net/http"
	"os"
	"sync"
	"time"
)

const accessLogBuffer = 256

// AccessLog appends one "<timestamp> <method> <path>" line per request to a
// file. Writes go through a buffered channel drained by a single goroutine, so
// recording never blocks the response; lines are dropped if the buffer is full.
type AccessLog struct {
	ch        chan string
	f         *os.File
	done      chan struct{}
	closeOnce sync.Once
}

func NewAccessLog(path string) (*AccessLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	a := &AccessLog{
		ch:   make(chan string, accessLogBuffer),
		f:    f,
		done: make(chan struct{}),
	}
	go a.run()
	return a, nil
}

func (a *AccessLog) run() {
	for line := range a.ch {
		_, _ = a.f.WriteString(line)
	}
	_ = a.f.Sync()
	close(a.done)
}

func (a *AccessLog) Record(method, path string, ts time.Time) {
	line := ts.UTC().Format(time.RFC3339) + " " + method + " " + path + "\n"
	select {
	case a.ch <- line:
	default:
	}
}

// Close stops accepting lines, drains what was already queued and closes the
// file. Record must not be called after Close.
func (a *AccessLog) Close() error {
	a.closeOnce.Do(func() { close(a.ch) })
	<-a.done
	return a.f.Close()
}

func (a *AccessLog) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.Record(r.Method, r.URL.Path, time.Now())
		next.ServeHTTP(w, r)
	})
}
