package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	if _, err := Init("verbose", "json"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if _, err := Init("info", "xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}

	l, err := Init("debug", "console")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if L() != l {
		t.Fatalf("expected global logger to be replaced")
	}
}

func TestL_DefaultsToNop(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatalf("expected a usable logger before Init")
	}
	L().Info("dropped")
}

func TestSet_CapturesEntries(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	L().Info("[quote][usecase] created", zap.String("quote_id", "q1"))
	if logs.Len() != 1 || logs.All()[0].ContextMap()["quote_id"] != "q1" {
		t.Fatalf("unexpected entries: %+v", logs.All())
	}
}
