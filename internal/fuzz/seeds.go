package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"lintfmt/internal/lint"
	"lintfmt/internal/report"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	``,
	`[]`,
	`{"violations":[]}`,
	`[{"file":"a.ts","line":0,"column":0,"message":"m","rule":"r","severity":"error"}]`,
	`{"violations":[{"file":"b.ts","line":4294967295,"column":1,"message":"multi\nline","rule":"r","severity":"warn","fixable":true}]}`,
	`[{"file":"café.ts","line":1,"column":2,"message":"m","rule":"r","severity":"WARNING"}]`,
	"violations:\n  - file: a.go\n    line: 1\n    column: 2\n    severity: error\n",
	"- {file: x, line: -1, column: 0, severity: error}\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s), uint8(report.CodecAuto))
	}
	addMsgpackSeed(f)
	addTestdataSeeds(f)
}

func addMsgpackSeed(f *testing.F) {
	var buf bytes.Buffer
	vs := []lint.Violation{
		lint.NewError("no-any", "a.ts", lint.Position{Line: 1, Col: 2}, "Unexpected any"),
		lint.NewWarning("semi", "b.ts", lint.Position{}, "Missing semicolon").WithFix(),
	}
	if err := report.Encode(&buf, report.CodecMsgpack, vs); err != nil {
		return
	}
	f.Add(buf.Bytes(), uint8(report.CodecMsgpack))
}

// addTestdataSeeds adds every report found under the repository testdata
// directory, if one exists.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		codec := report.CodecAuto.Resolve(path)
		if codec == report.CodecJSON && filepath.Ext(path) != ".json" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src), uint8(codec))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// codecFrom maps an arbitrary fuzz byte onto a known codec.
func codecFrom(b uint8) report.Codec {
	return report.Codec(b % 4)
}
