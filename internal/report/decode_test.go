package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lintfmt/internal/lint"
)

func decodeAll(t *testing.T, input []byte, codec Codec, name string) ([]lint.Violation, error) {
	t.Helper()
	bag := lint.NewBag(0)
	err := Decode(bytes.NewReader(input), codec, name, lint.BagReporter{Bag: bag})
	return bag.Items(), err
}

func TestDecodeJSONForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "object",
			input: `{"violations":[{"file":"a.ts","line":0,"column":4,"message":"m","rule":"r","severity":"error","fixable":true}]}`,
			want:  1,
		},
		{
			name:  "array",
			input: `[{"file":"a.ts","line":1,"column":0,"message":"m","rule":"r","severity":"warning"},{"file":"b.ts","line":2,"column":3,"message":"n","rule":"q","severity":"warn"}]`,
			want:  2,
		},
		{name: "empty input", input: "  \n", want: 0},
		{name: "empty array", input: "[]", want: 0},
		{name: "empty object", input: "{}", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAll(t, []byte(tt.input), CodecJSON, "in.json")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d violations, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDecodeFieldMapping(t *testing.T) {
	input := `{"violations":[{"file":"src/a.ts","line":3,"column":7,"message":"Unexpected any","rule":"no-any","severity":"error","fixable":true}]}`
	got, err := decodeAll(t, []byte(input), CodecAuto, "report.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := lint.Violation{
		Path:     "src/a.ts",
		Start:    lint.Position{Line: 3, Col: 7},
		Message:  "Unexpected any",
		Rule:     "no-any",
		Severity: lint.SevError,
		Fixable:  true,
	}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeYAML(t *testing.T) {
	input := `
violations:
  - file: a.go
    line: 10
    column: 2
    message: unused variable
    rule: unused
    severity: warning
    fixable: true
`
	got, err := decodeAll(t, []byte(input), CodecAuto, "report.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d violations, want 1", len(got))
	}
	if got[0].Severity != lint.SevWarning || got[0].Start.Line != 10 || !got[0].Fixable {
		t.Fatalf("unexpected violation: %+v", got[0])
	}

	seq := "- file: b.go\n  line: 1\n  column: 1\n  message: x\n  rule: y\n  severity: error\n"
	got, err = decodeAll(t, []byte(seq), CodecYAML, "stdin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Path != "b.go" {
		t.Fatalf("unexpected violations: %+v", got)
	}
}

func TestDecodeMsgpackRoundTrip(t *testing.T) {
	vs := []lint.Violation{
		lint.NewError("no-any", "a.ts", lint.Position{Line: 1, Col: 2}, "Unexpected any"),
		lint.NewWarning("semi", "b.ts", lint.Position{Line: 0, Col: 0}, "Missing semicolon").WithFix(),
	}
	var buf bytes.Buffer
	if err := Encode(&buf, CodecMsgpack, vs); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeAll(t, buf.Bytes(), CodecAuto, "report.msgpack")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(vs) {
		t.Fatalf("got %d violations, want %d", len(got), len(vs))
	}
	for i := range vs {
		if got[i] != vs[i] {
			t.Errorf("violation %d: got %+v, want %+v", i, got[i], vs[i])
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		is      error
	}{
		{
			name:    "unknown severity",
			input:   `[{"file":"a","line":0,"column":0,"severity":"info"}]`,
			wantErr: "violation #1",
			is:      lint.ErrInvalidSeverity,
		},
		{
			name:    "negative line",
			input:   `[{"file":"a","line":-1,"column":0,"severity":"error"}]`,
			wantErr: "invalid line -1",
		},
		{
			name:    "column overflow",
			input:   `[{"file":"a","line":0,"column":4294967296,"severity":"error"}]`,
			wantErr: "invalid column",
		},
		{
			name:    "missing file",
			input:   `[{"line":0,"column":0,"severity":"error"}]`,
			wantErr: "missing file",
		},
		{
			name:    "malformed",
			input:   `{"violations":`,
			wantErr: "failed to parse json report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeAll(t, []byte(tt.input), CodecJSON, "bad.json")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
			if len(got) != 0 {
				t.Errorf("reported %d violations on failure", len(got))
			}
		})
	}
}

func TestDecodeNormalizesPath(t *testing.T) {
	// e followed by a combining acute accent
	input := `[{"file":"cafe\u0301.ts","line":0,"column":0,"message":"m","rule":"r","severity":"error"}]`
	got, err := decodeAll(t, []byte(input), CodecJSON, "in.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Path != "caf\u00e9.ts" {
		t.Fatalf("path not NFC-normalized: %q", got[0].Path)
	}
}

func TestCodecResolve(t *testing.T) {
	tests := []struct {
		codec Codec
		path  string
		want  Codec
	}{
		{CodecAuto, "r.json", CodecJSON},
		{CodecAuto, "r.YML", CodecYAML},
		{CodecAuto, "r.yaml", CodecYAML},
		{CodecAuto, "r.mp", CodecMsgpack},
		{CodecAuto, "-", CodecJSON},
		{CodecYAML, "r.json", CodecYAML},
	}
	for _, tt := range tests {
		if got := tt.codec.Resolve(tt.path); got != tt.want {
			t.Errorf("%v.Resolve(%q) = %v, want %v", tt.codec, tt.path, got, tt.want)
		}
	}

	if _, err := ParseCodec("xml"); err == nil {
		t.Error("ParseCodec(xml) should fail")
	}
	if c, err := ParseCodec(" YAML "); err != nil || c != CodecYAML {
		t.Errorf("ParseCodec(YAML) = %v, %v", c, err)
	}
}
