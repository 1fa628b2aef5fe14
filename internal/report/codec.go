package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec identifies a report encoding.
type Codec uint8

const (
	// CodecAuto picks the codec from the file extension, defaulting to JSON.
	CodecAuto Codec = iota
	CodecJSON
	CodecYAML
	CodecMsgpack
)

func (c Codec) String() string {
	switch c {
	case CodecAuto:
		return "auto"
	case CodecJSON:
		return "json"
	case CodecYAML:
		return "yaml"
	case CodecMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseCodec converts a flag value into Codec.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CodecAuto, nil
	case "json":
		return CodecJSON, nil
	case "yaml", "yml":
		return CodecYAML, nil
	case "msgpack", "mp":
		return CodecMsgpack, nil
	default:
		return CodecAuto, fmt.Errorf("unknown input format: %s (expected auto|json|yaml|msgpack)", s)
	}
}

// Resolve returns the concrete codec for path when c is CodecAuto.
func (c Codec) Resolve(path string) Codec {
	if c != CodecAuto {
		return c
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return CodecYAML
	case ".msgpack", ".mp":
		return CodecMsgpack
	default:
		return CodecJSON
	}
}
