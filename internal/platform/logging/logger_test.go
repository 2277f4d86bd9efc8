package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "", want: LevelInfo},
		{in: "DEBUG", want: LevelDebug},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v wantErr=%v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", tt.in, got, tt.want)
		}
	}
}

func TestWarnContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	logger.WarnContext(ctx, "history fetch failed", "entry_id", 7)
	logger.DebugContext(ctx, "dropped below level")

	out := buf.String()
	for _, want := range []string{`"msg":"history fetch failed"`, `"request_id":"req-42"`, `"entry_id":7`, `"level":"warn"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, "dropped below level") {
		t.Fatalf("debug entry written at info level: %s", out)
	}
}
