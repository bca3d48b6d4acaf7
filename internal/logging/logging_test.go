package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantLog bool
		wantErr bool
	}{
		{name: "default level", level: "", wantLog: true},
		{name: "debug", level: "debug", wantLog: true},
		{name: "upper case", level: "WARN", wantLog: false},
		{name: "invalid", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			logger.Info().Str("expression", "1 + 1").Msg("evaluated")
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Fatalf("logged = %v, want %v", got, tt.wantLog)
			}
			if !tt.wantLog {
				return
			}
			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("expected JSON output, got %q", buf.String())
			}
			delete(entry, "time")
			want := map[string]any{"level": "info", "expression": "1 + 1", "message": "evaluated"}
			if diff := cmp.Diff(want, entry); diff != "" {
				t.Errorf("log entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
