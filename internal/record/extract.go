package record

import (
	"encoding/json"
	"io"
	"strings"
)

// strategy is one self-contained interpretation of raw text as a record
// sequence. ok reports whether the strategy applies at all; a strategy may
// succeed with zero records (a valid empty array is still a valid parse).
type strategy func(text string) (records []Record, ok bool)

// Extract recovers an ordered sequence of records from potentially
// malformed JSON text. It never fails: strategies are tried in priority
// order, the first applicable one wins, and the worst case is an empty
// sequence. Precision before recall — a single well-formed parse is always
// preferred over heuristic brace scanning.
func Extract(text string) []Record {
	strategies := []strategy{
		parseDirect,
		parseBracketed,
		parseLines,
		scanBraces,
	}
	for _, s := range strategies {
		if records, ok := s(text); ok {
			return records
		}
	}
	return nil
}

// parseDirect parses the whole text as a single JSON value. An array
// yields its elements as records, an object yields a one-element sequence,
// and any other top-level value does not match.
func parseDirect(text string) ([]Record, bool) {
	v, ok := parseValue(text)
	if !ok {
		return nil, false
	}
	switch val := v.(type) {
	case []any:
		return toRecords(val), true
	case map[string]any:
		return []Record{Record(val)}, true
	}
	return nil, false
}

// parseBracketed repairs files that are "almost" a JSON array: a
// comma-separated sequence of objects missing its outer brackets, or one
// with a stray trailing comma. The text is trimmed, stripped of a single
// trailing comma, wrapped in brackets, and parsed as an array.
func parseBracketed(text string) ([]Record, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(text), ",")
	v, ok := parseValue("[" + trimmed + "]")
	if !ok {
		return nil, false
	}
	arr, isArr := v.([]any)
	if !isArr {
		return nil, false
	}
	return toRecords(arr), true
}

// parseLines treats the text as newline-delimited JSON, tolerating a
// trailing comma on each line. Lines that fail to parse or parse to a
// non-object are skipped without aborting the scan. Applies only if at
// least one object was found.
func parseLines(text string) ([]Record, bool) {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(strings.TrimSpace(line), ",")
		if line == "" {
			continue
		}
		v, ok := parseValue(line)
		if !ok {
			continue
		}
		if obj, isObj := v.(map[string]any); isObj {
			records = append(records, Record(obj))
		}
	}
	return records, len(records) > 0
}

// scanBraces is the last resort: scan the raw text for balanced JSON
// objects, ignoring whatever surrounds them. At each "{" a decode is
// attempted; success advances the cursor past the consumed value, failure
// advances it by one byte. Both rules guarantee forward progress, so total
// work is bounded by the text length.
func scanBraces(text string) ([]Record, bool) {
	var records []Record
	pos := 0
	for pos < len(text) {
		idx := strings.IndexByte(text[pos:], '{')
		if idx < 0 {
			break
		}
		start := pos + idx
		v, end, ok := decodeAt(text, start)
		if !ok {
			pos = start + 1
			continue
		}
		if obj, isObj := v.(map[string]any); isObj {
			records = append(records, Record(obj))
		}
		pos = end
	}
	return records, true
}

// parseValue parses text as exactly one JSON value. Trailing content other
// than whitespace disqualifies the parse.
func parseValue(text string) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, true
}

// decodeAt decodes a single JSON value from text starting at offset off.
// It returns the value, the offset immediately past the consumed bytes,
// and whether the decode succeeded.
func decodeAt(text string, off int) (v any, end int, ok bool) {
	dec := json.NewDecoder(strings.NewReader(text[off:]))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, 0, false
	}
	return v, off + int(dec.InputOffset()), true
}

// toRecords converts array elements to records. Non-object elements are
// kept as empty records so the count and order match the source array.
func toRecords(arr []any) []Record {
	records := make([]Record, len(arr))
	for i, elem := range arr {
		if obj, isObj := elem.(map[string]any); isObj {
			records[i] = Record(obj)
		} else {
			records[i] = Record{}
		}
	}
	return records
}
