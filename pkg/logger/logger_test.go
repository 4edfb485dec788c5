package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetBeforeInitIsDisabled(t *testing.T) {
	Reset()
	if Get().GetLevel() != zerolog.Disabled {
		t.Fatal("expected a disabled logger before Init")
	}
}

func TestComponentFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "debug", Service: "lumina-api", Output: &buf})
	Init(Options{Level: "error", Output: &bytes.Buffer{}})

	l := Component("posts")
	l.Debug().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "lumina-api" || entry["component"] != "posts" || entry["message"] != "hello" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
