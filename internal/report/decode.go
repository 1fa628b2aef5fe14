package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"lintfmt/internal/lint"
)

// Decode reads a whole report from r and sends every violation to rep.
// name is only used in error messages. Nothing is reported when decoding
// fails.
func Decode(r io.Reader, codec Codec, name string, rep lint.Reporter) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: failed to read report: %w", name, err)
	}
	records, err := decodeRecords(data, codec.Resolve(name))
	if err != nil {
		return fmt.Errorf("%s: failed to parse %s report: %w", name, codec.Resolve(name), err)
	}

	vs := make([]lint.Violation, 0, len(records))
	for i, rec := range records {
		v, err := rec.Violation()
		if err != nil {
			return fmt.Errorf("%s: violation #%d: %w", name, i+1, err)
		}
		vs = append(vs, v)
	}
	for _, v := range vs {
		rep.Report(v)
	}
	return nil
}

func decodeRecords(data []byte, codec Codec) ([]Record, error) {
	switch codec {
	case CodecYAML:
		return decodeYAML(data)
	case CodecMsgpack:
		return decodeMsgpack(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Violations, nil
}

func decodeYAML(data []byte) ([]Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Violations, nil
}

func decodeMsgpack(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw any
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw.([]any); ok {
		var records []Record
		if err := msgpack.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc Document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Violations, nil
}

// Encode writes vs as a report document.
func Encode(w io.Writer, codec Codec, vs []lint.Violation) error {
	doc := Document{Violations: make([]Record, 0, len(vs))}
	for _, v := range vs {
		doc.Violations = append(doc.Violations, FromViolation(v))
	}
	switch codec {
	case CodecYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case CodecMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}
