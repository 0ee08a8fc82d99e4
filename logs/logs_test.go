package logs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Fork(
		dscope.Provide(FileSinkPath(filepath.Join(t.TempDir(), "test.log"))),
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sink.log")
	dscope.New(new(Module)).Fork(
		dscope.Provide(FileSinkPath(path)),
	).Call(func(
		logger Logger,
	) {
		logger.Info("prompt sent", "model", "gpt-4")
		logger.Error("provider failed", "error", "boom")
	})

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)
	if !strings.Contains(text, " - INFO - prompt sent model=gpt-4") {
		t.Fatalf("got %q", text)
	}
	if !strings.Contains(text, " - ERROR - provider failed error=boom") {
		t.Fatalf("got %q", text)
	}
}

func TestNewSpan(t *testing.T) {
	dscope.New(new(Module)).Fork(
		dscope.Provide(FileSinkPath(filepath.Join(t.TempDir(), "test.log"))),
	).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		if span == "" {
			t.Fatal()
		}
		if ctx.Value(SpanKey).(Span) != span {
			t.Fatal()
		}

		ctx2, span2 := newSpan(ctx, span)
		if span2 == span {
			t.Fatal()
		}
		if ctx2.Value(SpanKey).(Span) != span2 {
			t.Fatal()
		}
	})
}
