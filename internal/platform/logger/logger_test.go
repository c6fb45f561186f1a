package logger

import (
	"bytes"
	"context"
	"testing"

	"watchdog/internal/platform/testkit"
)

// Init latches via sync.Once, so the whole package shares one buffer-backed root
var logBuf bytes.Buffer

func TestMain(m *testing.M) {
	Init(Options{Level: "info", Format: "json", Writer: &logBuf, Service: "watchdog"})
	m.Run()
}

func TestLevelsAndFields(t *testing.T) {
	logBuf.Reset()

	log := Get()
	log.Debug().Msg("dropped")
	log.Info().Str("group", "AmazonEC2").Msg("kept")

	out := logBuf.String()
	testkit.MustContain(t, out, `"kept"`)
	testkit.MustContain(t, out, `"group":"AmazonEC2"`)
	testkit.MustContain(t, out, `"service":"watchdog"`)
	if bytes.Contains(logBuf.Bytes(), []byte("dropped")) {
		t.Fatalf("debug line should be filtered at info level:\n%s", out)
	}
}

func TestRequestScopedLogger(t *testing.T) {
	logBuf.Reset()

	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("scoped")

	testkit.MustContain(t, logBuf.String(), `"request_id":"req-123"`)
}

func TestNamedComponent(t *testing.T) {
	logBuf.Reset()

	Named("detect").Info().Msg("hello")
	testkit.MustContain(t, logBuf.String(), `"component":"detect"`)
}

func TestParseLevelDefaults(t *testing.T) {
	if parseLevel("garbage").String() != "info" {
		t.Fatalf("unknown level should default to info")
	}
	if parseLevel(" WARN ").String() != "warn" {
		t.Fatalf("level parse should trim and lowercase")
	}
}
