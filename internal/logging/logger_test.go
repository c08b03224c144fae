package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Spok95/online-catalogue/internal/ctxutil"
)

func TestInit_FallsBackToInfo(t *testing.T) {
	l, err := Init("nonsense", "dev")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Closer()
	if l.Level.Level() != zap.InfoLevel {
		t.Fatalf("level = %s", l.Level.Level())
	}
}

func TestInit_LevelChangesAtRuntime(t *testing.T) {
	l, err := Init("debug", "prod")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Closer()
	if !l.Base.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug must be enabled")
	}
	l.Level.SetLevel(zap.WarnLevel)
	if l.Base.Core().Enabled(zap.InfoLevel) {
		t.Fatal("level change did not reach the logger")
	}
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := ctxutil.WithOp(ctxutil.WithRequestID(context.Background(), "rid-1"), "AddMark")
	FromContext(ctx, zap.New(core)).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "rid-1" || fields["op"] != "AddMark" {
		t.Fatalf("fields = %v", fields)
	}
}

func TestGormLoggerTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGormLogger(zap.New(core), 10*time.Millisecond)
	fc := func() (string, int64) { return "SELECT 1", 1 }

	g.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)
	if logs.Len() != 0 {
		t.Fatal("record not found must not be logged")
	}

	g.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	if logs.FilterMessage("sql failed").Len() != 1 {
		t.Fatal("expected failed statement to be logged")
	}

	g.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	if logs.FilterMessage("slow sql").Len() != 1 {
		t.Fatal("expected slow statement to be logged")
	}

	silent := g.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
	if logs.FilterMessage("sql failed").Len() != 1 {
		t.Fatal("silent mode must not log")
	}
}
