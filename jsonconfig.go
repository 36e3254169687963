package iso8583

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// FieldSpec is the serializable description of one field, used both for
// parse-schema entries (Kind/DeclaredLength only) and template entries
// (Kind/DeclaredLength/Value) — a single tagged struct covering both
// configuration roles. It carries both json and yaml tags so the same
// shape loads from either the core's in-process JSON loader or
// iso8583cfg's external YAML loader.
type FieldSpec struct {
	Kind           string `json:"kind" yaml:"kind"`
	DeclaredLength int    `json:"declared_length,omitempty" yaml:"declared_length,omitempty"`
	Value          string `json:"value,omitempty" yaml:"value,omitempty"`
}

// TypeSpec is the serializable per-message-type configuration: header,
// optional template fields (with values), and the parse schema.
type TypeSpec struct {
	Header   string               `json:"header,omitempty" yaml:"header,omitempty"`
	Template map[string]FieldSpec `json:"template,omitempty" yaml:"template,omitempty"`
	Schema   map[string]FieldSpec `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// FactoryConfig is the root configuration document loaded by
// LoadFactoryConfig (JSON, in-core) or iso8583cfg.Load (YAML, external): a
// per-type map keyed by four-hex-digit MTI strings, plus factory-wide
// settings. The core package only ever parses this shape as JSON itself —
// per its external-collaborator boundary on configuration loading from
// markup — but the struct's dual tags let iso8583cfg parse the identical
// shape from YAML without the core importing a markup parser.
type FactoryConfig struct {
	Types      map[string]TypeSpec `json:"types" yaml:"types"`
	AssignDate bool                `json:"assign_date,omitempty" yaml:"assign_date,omitempty"`
	Terminator int                 `json:"terminator,omitempty" yaml:"terminator,omitempty"`
	Charset    string              `json:"charset,omitempty" yaml:"charset,omitempty"`
}

var kindByName = map[string]IsoType{
	"NUMERIC": NUMERIC,
	"ALPHA":   ALPHA,
	"LLVAR":   LLVAR,
	"LLLVAR":  LLLVAR,
	"DATE10":  DATE10,
	"DATE4":   DATE4,
	"DATEEXP": DATEEXP,
	"TIME":    TIME,
	"AMOUNT":  AMOUNT,
	"BINARY":  BINARY,
	"LLBIN":   LLBIN,
	"LLLBIN":  LLLBIN,
}

func kindFromName(name string) (IsoType, error) {
	k, ok := kindByName[name]
	if !ok {
		return 0, fmt.Errorf("iso8583: unknown field kind %q", name)
	}
	return k, nil
}

// LoadFactoryConfigFile reads and parses a JSON factory configuration file
// and returns a FactoryBuilder ready for further options or Build.
func LoadFactoryConfigFile(path string) (*FactoryBuilder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iso8583: reading factory config %s: %w", path, err)
	}
	return LoadFactoryConfig(data)
}

// LoadFactoryConfig parses a JSON factory configuration document and
// returns a FactoryBuilder ready for further options or Build.
func LoadFactoryConfig(data []byte) (*FactoryBuilder, error) {
	var cfg FactoryConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("iso8583: parsing factory config: %w", err)
	}
	return BuildFactoryBuilder(&cfg)
}

// BuildFactoryBuilder applies a parsed FactoryConfig onto a fresh
// FactoryBuilder. Exported so iso8583cfg (which parses YAML into the same
// FactoryConfig shape) can reuse it without the core importing a markup
// parser.
func BuildFactoryBuilder(cfg *FactoryConfig) (*FactoryBuilder, error) {
	b := NewFactoryBuilder()
	b.SetAssignDate(cfg.AssignDate)
	if cfg.Terminator != 0 {
		b.SetETX(cfg.Terminator)
	} else {
		b.SetETX(-1)
	}
	if cfg.Charset == "UTF-8" {
		b.SetCharset(UTF8Charset())
	} else {
		b.SetCharset(DefaultCharset())
	}

	for mtiHex, ts := range cfg.Types {
		msgType, err := parseHexMTI([]byte(mtiHex))
		if err != nil {
			return nil, fmt.Errorf("iso8583: factory config type key %q: %w", mtiHex, err)
		}
		b.SetISOHeader(msgType, ts.Header)

		if len(ts.Template) > 0 {
			tmpl := newIsoMessage(ts.Header, msgType, -1, DefaultCharset())
			for idxStr, fs := range ts.Template {
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("iso8583: template field index %q: %w", idxStr, err)
				}
				kind, err := kindFromName(fs.Kind)
				if err != nil {
					return nil, err
				}
				if err := tmpl.SetValue(idx, fs.Value, kind, fs.DeclaredLength); err != nil {
					return nil, fmt.Errorf("iso8583: template field %d: %w", idx, err)
				}
			}
			b.SetMessageTemplate(msgType, tmpl)
		}

		if len(ts.Schema) > 0 {
			schema := make(map[int]FieldParseInfo, len(ts.Schema))
			for idxStr, fs := range ts.Schema {
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("iso8583: schema field index %q: %w", idxStr, err)
				}
				kind, err := kindFromName(fs.Kind)
				if err != nil {
					return nil, err
				}
				schema[idx] = FieldParseInfo{Kind: kind, DeclaredLength: fs.DeclaredLength}
			}
			b.SetParseMap(msgType, schema)
		}
	}
	return b, nil
}
