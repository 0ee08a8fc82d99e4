package logs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/reusee/aimaker/cmds"
	"github.com/reusee/aimaker/vars"
)

// FileSinkPath is where the persistent log goes. Every request sent to a
// model provider and every response received is appended there, so a run
// can be audited after the fact.
type FileSinkPath string

var logFilePath = cmds.Var[string]("-log-file")

func init() {
	cmds.Define("-no-log-file", cmds.Func(func() {
		*logFilePath = os.DevNull
	}).Desc("disable the persistent log file"))
}

func (Module) FileSinkPath() FileSinkPath {
	return FileSinkPath(vars.FirstNonZero(
		*logFilePath,
		"aimaker.log",
	))
}

// fileSinkHandler appends line-oriented entries in the form
// "timestamp - LEVEL - message key=value ...". It does not fan out
// anywhere else.
type fileSinkHandler struct {
	mu    *sync.Mutex
	open  func() (*os.File, error)
	attrs []slog.Attr
}

func newFileSinkHandler(path FileSinkPath) *fileSinkHandler {
	return &fileSinkHandler{
		mu: new(sync.Mutex),
		open: sync.OnceValues(func() (*os.File, error) {
			return os.OpenFile(string(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		}),
	}
}

var _ slog.Handler = new(fileSinkHandler)

func (h *fileSinkHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= level.Level()
}

func (h *fileSinkHandler) Handle(_ context.Context, record slog.Record) error {
	file, err := h.open()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(record.Time.Format("2006-01-02 15:04:05,000"))
	sb.WriteString(" - ")
	sb.WriteString(record.Level.String())
	sb.WriteString(" - ")
	sb.WriteString(record.Message)
	writeAttr := func(attr slog.Attr) {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		fmt.Fprintf(&sb, "%v", attr.Value.Resolve().Any())
	}
	for _, attr := range h.attrs {
		writeAttr(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(attr)
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = file.WriteString(sb.String())
	return err
}

func (h *fileSinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ret := *h
	ret.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &ret
}

func (h *fileSinkHandler) WithGroup(name string) slog.Handler {
	// groups are flattened in the line format
	return h
}
