package fuzztests

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lintfmt/internal/lint"
	"lintfmt/internal/lintfmt"
	"lintfmt/internal/report"
	"lintfmt/internal/style"
	"lintfmt/internal/testkit"
)

func FuzzDecodeReport(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, codecByte uint8) {
		input = clampInput(input)
		bag := lint.NewBag(0)
		err := report.Decode(bytes.NewReader(input), codecFrom(codecByte), "fuzz", lint.BagReporter{Bag: bag})
		if err != nil {
			if bag.Len() != 0 {
				t.Fatalf("reported %d violations before failing", bag.Len())
			}
			return
		}
		for _, v := range bag.Items() {
			if !v.Severity.Valid() {
				t.Fatalf("decoded invalid severity %v", v.Severity)
			}
			if v.Path == "" {
				t.Fatal("decoded empty path")
			}
		}
	})
}

func FuzzFormatDecoded(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, codecByte uint8) {
		input = clampInput(input)
		bag := lint.NewBag(0)
		if err := report.Decode(bytes.NewReader(input), codecFrom(codecByte), "fuzz", lint.BagReporter{Bag: bag}); err != nil {
			return
		}
		vs := bag.Items()

		res, err := lintfmt.Group(lint.Sort(vs))
		if err != nil {
			t.Fatalf("Group failed on decoded input: %v", err)
		}
		if err := testkit.CheckResultInvariants(vs, res); err != nil {
			t.Fatal(err)
		}

		opts := lintfmt.Options{Symbols: style.ASCII}
		out, err := lintfmt.Format(vs, opts)
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if !strings.Contains(out, "Found ") {
			t.Fatalf("summary missing:\n%s", out)
		}

		js, err := lintfmt.NewJSON(opts).Format(vs)
		if err != nil {
			t.Fatalf("JSON: %v", err)
		}
		if !json.Valid([]byte(js)) {
			t.Fatalf("JSON formatter produced invalid json:\n%s", js)
		}

		for _, name := range lintfmt.Names() {
			formatter, err := lintfmt.Lookup(name, opts)
			if err != nil {
				t.Fatalf("Lookup(%s): %v", name, err)
			}
			if _, err := formatter.Format(vs); err != nil {
				t.Fatalf("%s formatter: %v", name, err)
			}
		}
	})
}
