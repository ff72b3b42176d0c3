package appsync

import "encoding/json"

// listFields are the input attributes declared as string lists in the API
// schema but historically sent as bare strings by older clients. A scalar
// here means a one-element list.
var listFields = map[string]bool{
	"revenueModel":            true,
	"industries":              true,
	"organizationType":        true,
	"industryFocus":           true,
	"supportType":             true,
	"fundingStageFocus":       true,
	"startupStagePreference":  true,
	"preferredBusinessModels": true,
}

// normalizeInput rewrites scalar values of known list fields into
// one-element arrays so the typed input unmarshals cleanly.
func normalizeInput(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return raw, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	changed := false
	for name := range listFields {
		v, ok := m[name]
		if !ok || len(v) == 0 {
			continue
		}
		if v[0] == '[' || string(v) == "null" {
			continue
		}
		wrapped, err := json.Marshal([]json.RawMessage{v})
		if err != nil {
			return nil, err
		}
		m[name] = wrapped
		changed = true
	}
	if !changed {
		return raw, nil
	}
	return json.Marshal(m)
}
