package debug

import (
	"io"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/value"
)

var (
	mu     sync.Mutex
	logger log.Logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = level.NewFilter(l, level.AllowDebug())
	return log.With(l, "ts", log.DefaultTimestampUTC)
}

// SetOutput redirects debug logs to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func current() log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Flow renders a value in inline form when logged.
type Flow struct{ *value.Value }

func (f Flow) String() string {
	if f.Value == nil {
		return "<nil>"
	}
	return encode.Dump(f.Value)
}

// Logf logs msg at debug level with the given key value pairs. Values of
// type *value.Value are rendered in inline form.
func Logf(msg string, keyvals ...any) {
	_ = level.Debug(current()).Log(append([]any{"msg", msg}, flows(keyvals)...)...)
}

// Errorf logs msg at error level.
func Errorf(msg string, err error, keyvals ...any) {
	_ = level.Error(current()).Log(append([]any{"msg", msg, "err", err}, flows(keyvals)...)...)
}

func flows(keyvals []any) []any {
	for i := 1; i < len(keyvals); i += 2 {
		if v, ok := keyvals[i].(*value.Value); ok {
			keyvals[i] = Flow{v}
		}
	}
	return keyvals
}
