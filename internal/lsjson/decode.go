package lsjson

import (
	"encoding/json"
	"strconv"

	"github.com/uskr/wdclient/internal/wdevent"
)

// RawFields is an lsdata attribute decoded to standard JSON: a map from
// the kind's numbered field index (as a string key, e.g. "0", "23") to
// its raw value. Each element kind's decoder pulls named Go fields out of
// this by declaring which numbered key backs each one (spec.md §4.2).
type RawFields map[string]json.RawMessage

// DecodeLSData normalizes raw and decodes it into RawFields. A malformed
// payload returns an error; callers should treat that as "decode to
// defaults" per spec.md §7, not propagate it as fatal.
func DecodeLSData(raw string) (RawFields, error) {
	if raw == "" {
		return RawFields{}, nil
	}
	normalized := Normalize(raw)
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(normalized), &m); err != nil {
		return nil, err
	}
	return RawFields(m), nil
}

// String reads field key as a string, returning "" if absent or of the
// wrong shape.
func (f RawFields) String(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Bool reads field key as a boolean. The framework sometimes serializes
// booleans as the strings "true"/"X"/"" rather than JSON booleans, so this
// accepts either shape.
func (f RawFields) Bool(key string) bool {
	raw, ok := f[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true" || s == "X" || s == "1"
	}
	return false
}

// Int reads field key as an integer, returning 0 if absent or malformed.
func (f RawFields) Int(key string) int {
	raw, ok := f[key]
	if !ok {
		return 0
	}
	var i int
	if err := json.Unmarshal(raw, &i); err == nil {
		return i
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return 0
}

// Has reports whether key was present in the decoded payload at all,
// distinguishing "absent" from "present but zero value".
func (f RawFields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// EventSpec is the (ucfParameters, customParameters) pair the framework
// records per declared event name (spec.md §4.3).
type EventSpec struct {
	UCF    wdevent.UcfParameters
	Custom map[string]string
}

// DecodeLSEvents normalizes raw and decodes it into a map from event name
// to its declared EventSpec. Each entry's own payload carries the ucf
// object under key "0" (or "ucf") and the custom-parameter object under
// key "1" (or "custom"), mirroring the numbered-then-named leniency
// lsdata decoding already needs, since the framework is not consistent
// about whether sub-objects use positional or named keys.
func DecodeLSEvents(raw string) (map[string]EventSpec, error) {
	if raw == "" {
		return map[string]EventSpec{}, nil
	}
	normalized := Normalize(raw)
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(normalized), &top); err != nil {
		return nil, err
	}
	out := make(map[string]EventSpec, len(top))
	for name, entryRaw := range top {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(entryRaw, &entry); err != nil {
			continue // malformed single event entry: skip, defaults elsewhere
		}
		out[name] = decodeEventSpec(entry)
	}
	return out, nil
}

func decodeEventSpec(entry map[string]json.RawMessage) EventSpec {
	ucfRaw, ok := entry["ucf"]
	if !ok {
		ucfRaw = entry["0"]
	}
	customRaw, ok := entry["custom"]
	if !ok {
		customRaw = entry["1"]
	}

	spec := EventSpec{UCF: wdevent.DefaultUCF(), Custom: map[string]string{}}

	if len(ucfRaw) > 0 {
		var ucfFields map[string]json.RawMessage
		if err := json.Unmarshal(ucfRaw, &ucfFields); err == nil {
			fields := RawFields(ucfFields)
			if a := fields.String("Action"); a != "" {
				spec.UCF.Action = wdevent.Action(a)
			}
			if r := fields.String("ResponseData"); r != "" {
				spec.UCF.Response = wdevent.Response(r)
			}
			spec.UCF.Navigation = fields.String("Navigation")
			spec.UCF.Transport = fields.String("TransportMode")
			spec.UCF.DomChanged = fields.Bool("DomChanged")
			spec.UCF.IsDirty = fields.Bool("IsDirty")
			spec.UCF.ClientAction = fields.String("ClientAction")
		}
	}

	if len(customRaw) > 0 {
		var custom map[string]string
		if err := json.Unmarshal(customRaw, &custom); err == nil {
			spec.Custom = custom
		}
	}

	return spec
}
