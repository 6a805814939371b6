package records

import "encoding/json"

// FromStruct flattens a typed entity into a Record through its json
// tags. Numbers arrive as float64, same as they would from any decode
// boundary; the store's formatted comparisons absorb that.
func FromStruct(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	rec := Record{}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ToStruct rehydrates a stored record into a typed entity.
func ToStruct(rec Record, v any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
