package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a source document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from the file extension.
// Anything that is not .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Source is one raw source document as read from disk.
type Source struct {
	Name   string
	Format Format
	Data   []byte
}

// rawRecord mirrors the on-disk schema. Decoders reject any key not listed
// here, and keys match exactly.
type rawRecord struct {
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Language string `yaml:"language"`
	Start    string `yaml:"start"`
	Category string `yaml:"category"`
}

// DecodeSource validates a whole source document and returns its events in
// document order. A single bad record rejects the document.
func DecodeSource(src Source) ([]Event, error) {
	records, err := decodeRecords(src)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w: %v", src.Name, ErrSchemaViolation, err)
	}

	events := make([]Event, 0, len(records))
	for i, rec := range records {
		ev, err := rec.toEvent()
		if err != nil {
			return nil, fmt.Errorf("source %s record %d: %w", src.Name, i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func decodeRecords(src Source) ([]rawRecord, error) {
	switch src.Format {
	case FormatJSON:
		return decodeJSONRecords(src.Data)
	case FormatYAML, "":
		return decodeYAMLRecords(src.Data)
	default:
		return nil, fmt.Errorf("unsupported format %q", src.Format)
	}
}

// decodeYAMLRecords concatenates the records of every document in the
// stream. Each document is decoded strictly, so a bad record after a "---"
// separator rejects the source like one in the first document.
func decodeYAMLRecords(data []byte) ([]rawRecord, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var records []rawRecord
	for doc := 0; ; doc++ {
		var batch []rawRecord
		err := dec.Decode(&batch)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		records = append(records, batch...)
	}
}

// decodeJSONRecords walks the token stream instead of relying on
// json.Unmarshal, which folds key case, lets a repeated key overwrite the
// first and ignores anything after the top-level array.
func decodeJSONRecords(data []byte) ([]rawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errors.New("document must be an array of records")
	}

	var records []rawRecord
	for dec.More() {
		rec, err := decodeJSONRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the record array")
	}
	return records, nil
}

func decodeJSONRecord(dec *json.Decoder) (rawRecord, error) {
	tok, err := dec.Token()
	if err != nil {
		return rawRecord{}, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return rawRecord{}, errors.New("record must be an object")
	}

	var rec rawRecord
	slots := rec.slots()
	seen := make(map[string]bool, len(slots))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rawRecord{}, err
		}
		key, _ := tok.(string)
		dst, ok := slots[key]
		if !ok {
			return rawRecord{}, fmt.Errorf("unknown field %q", key)
		}
		if seen[key] {
			return rawRecord{}, fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = true
		if err := dec.Decode(dst); err != nil {
			return rawRecord{}, fmt.Errorf("field %q: %w", key, err)
		}
	}
	if _, err := dec.Token(); err != nil {
		return rawRecord{}, err
	}
	return rec, nil
}

// slots maps each schema key to the field it fills.
func (r *rawRecord) slots() map[string]*string {
	return map[string]*string{
		"title":    &r.Title,
		"url":      &r.URL,
		"name":     &r.Name,
		"address":  &r.Address,
		"language": &r.Language,
		"start":    &r.Start,
		"category": &r.Category,
	}
}

// ParseStart parses an RFC 3339 timestamp. The offset is mandatory, so naive
// local times such as "2024-06-06T18:00:00" are rejected.
func ParseStart(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start %q: %v", ErrTimestamp, s, err)
	}
	return t, nil
}
