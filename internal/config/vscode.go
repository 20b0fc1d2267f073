package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// VSCodeSection is the settings.json prefix of the editor extension's keys.
const VSCodeSection = "devComment"

// StripComments turns JSONC into plain JSON: // and /* */ comments are
// removed and trailing commas before } or ] are blanked. String contents
// are left untouched. An unterminated string or comment is kept as is
// (string) or dropped (comment) so the JSON decoder reports the error.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	comma := -1 // index in out of a comma with no value after it yet

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(data) && data[j] != '"' {
				if data[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(data) {
				return append(out, data[i:]...)
			}
			out = append(out, data[i:j+1]...)
			i = j
			comma = -1
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i+1 < len(data) && data[i+1] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			end := bytes.Index(data[i+2:], []byte("*/"))
			if end < 0 {
				return out
			}
			i += end + 3
			out = append(out, ' ')
		case c == ',':
			comma = len(out)
			out = append(out, c)
		case c == '}' || c == ']':
			if comma >= 0 {
				out[comma] = ' '
			}
			comma = -1
			out = append(out, c)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			out = append(out, c)
		default:
			comma = -1
			out = append(out, c)
		}
	}
	return out
}

// DecodeVSCode reads the devComment.* keys from a VS Code settings.json.
// Both flat ("devComment.user") and nested ({"devComment": {"user": ...}})
// layouts are accepted. Keys that are recognized but have no effect, and
// unknown devComment keys, are returned in settings.json order.
func DecodeVSCode(data []byte) (Settings, []string, error) {
	root := orderedmap.New()
	if err := json.Unmarshal(StripComments(data), root); err != nil {
		return Default(), nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	s := Default()
	var ignored []string

	apply := func(key string, value any) error {
		switch key {
		case "commentFormat":
			return setString(&s.CommentFormat, key, value)
		case "user":
			return setString(&s.User, key, value)
		case "dateFormat":
			return setString(&s.DateFormat, key, value)
		case "partialBranch":
			return setString(&s.PartialBranch, key, value)
		case "moveToEnd":
			b, ok := value.(bool)
			if !ok {
				return fmt.Errorf("%s.%s: expected boolean, got %T", VSCodeSection, key, value)
			}
			s.MoveToEnd = b
		case "additionalFormats":
			formats, err := decodeFormats(value)
			if err != nil {
				return err
			}
			s.AdditionalFormats = formats
		default:
			ignored = append(ignored, VSCodeSection+"."+key)
		}
		return nil
	}

	for _, k := range root.Keys() {
		v, _ := root.Get(k)
		if k == VSCodeSection {
			nested := toOrderedMap(v)
			if nested == nil {
				return Default(), nil, fmt.Errorf("%s: expected object, got %T", VSCodeSection, v)
			}
			for _, nk := range nested.Keys() {
				nv, _ := nested.Get(nk)
				if err := apply(nk, nv); err != nil {
					return Default(), nil, err
				}
			}
			continue
		}
		key, ok := strings.CutPrefix(k, VSCodeSection+".")
		if !ok {
			continue
		}
		if err := apply(key, v); err != nil {
			return Default(), nil, err
		}
	}

	return s, ignored, nil
}

func setString(dst *string, key string, value any) error {
	if value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s.%s: expected string, got %T", VSCodeSection, key, value)
	}
	*dst = str
	return nil
}

func decodeFormats(value any) ([]AdditionalFormat, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s.additionalFormats: expected array, got %T", VSCodeSection, value)
	}
	formats := make([]AdditionalFormat, 0, len(items))
	for i, item := range items {
		m := toOrderedMap(item)
		if m == nil {
			return nil, fmt.Errorf("%s.additionalFormats[%d]: expected object, got %T", VSCodeSection, i, item)
		}
		var f AdditionalFormat
		if v, ok := m.Get("languageId"); ok {
			f.LanguageID, _ = v.(string)
		}
		if v, ok := m.Get("commentSymbol"); ok {
			f.CommentSymbol, _ = v.(string)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// toOrderedMap converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func toOrderedMap(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}
