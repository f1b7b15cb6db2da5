package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Decode converts a loosely typed payload into a DisplayValue. Absent values
// and the empty string become Empty, maps become a Reference, slices become a
// ReferenceList and everything else is treated as RawMarkup.
func Decode(raw any) DisplayValue {
	switch v := raw.(type) {
	case nil:
		return Empty{}
	case DisplayValue:
		return v
	case string:
		if v == "" {
			return Empty{}
		}
		return RawMarkup(v)
	case map[string]any:
		return referenceFromMap(v)
	case map[string]string:
		converted := make(map[string]any, len(v))
		for key, value := range v {
			converted[key] = value
		}
		return referenceFromMap(converted)
	case []string:
		list := make(ReferenceList, 0, len(v))
		for _, item := range v {
			list = append(list, Reference{UID: item})
		}
		return list
	case []any:
		list := make(ReferenceList, 0, len(v))
		for _, item := range v {
			list = append(list, referenceFromAny(item))
		}
		return list
	case []map[string]any:
		list := make(ReferenceList, 0, len(v))
		for _, item := range v {
			list = append(list, referenceFromMap(item))
		}
		return list
	default:
		return RawMarkup(fmt.Sprint(v))
	}
}

// DecodeJSON parses a JSON document and decodes it with Decode.
func DecodeJSON(data []byte) (DisplayValue, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Empty{}, nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("model: decode display value: %w", err)
	}
	return Decode(raw), nil
}

func referenceFromAny(item any) Reference {
	switch v := item.(type) {
	case map[string]any:
		return referenceFromMap(v)
	case Reference:
		return v
	case string:
		return Reference{UID: v}
	case nil:
		return Reference{}
	default:
		return Reference{UID: fmt.Sprint(v)}
	}
}

func referenceFromMap(values map[string]any) Reference {
	uid := stringValue(values["uid"])
	if uid == "" {
		uid = stringValue(values["id"])
	}
	return Reference{
		UID:  uid,
		Name: stringValue(values["name"]),
	}
}

func stringValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
