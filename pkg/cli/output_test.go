package cli

import (
	"bytes"
	"errors"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{}

	out, err := f.Format("pit")
	if err != nil || string(out) != "pit\n" {
		t.Errorf("Format(string) = %q, %v", out, err)
	}

	out, err = f.Format([]string{"a", "b"})
	if err != nil || string(out) != "a\nb\n" {
		t.Errorf("Format(slice) = %q, %v", out, err)
	}

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, 42); err != nil || buf.String() != "42\n" {
		t.Errorf("FormatTo() = %q, %v", buf.String(), err)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}
	out, err := f.Format(map[string]string{"kind": "punop"})
	if err != nil || string(out) != `{"kind":"punop"}` {
		t.Errorf("Format() = %q, %v", out, err)
	}

	var buf bytes.Buffer
	indented := &JSONFormatter{Indent: true}
	if err := indented.FormatTo(&buf, []int{1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[\n  1\n]\n" {
		t.Errorf("FormatTo() = %q", buf.String())
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("FormatJSON did not produce a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("FormatText did not produce a TextFormatter")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v", tt.input, got, err)
		}
	}

	_, err := ParseOutputFormat("csv")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "format" {
		t.Errorf("error = %v, want ConfigError on format", err)
	}
}
