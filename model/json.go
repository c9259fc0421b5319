package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a string-keyed map persisted in a JSON column.
type JSONMap[V any] map[string]V

func (m JSONMap[V]) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]V(m))
}

func (m *JSONMap[V]) Scan(src any) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*m = JSONMap[V]{}
		return nil
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	out := map[string]V{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
	}
	*m = out
	return nil
}
