// Package metadata holds the one schema-less value type of the domain: free-form
// JSON documents such as uploaded-document descriptors or product requirements.
package metadata

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Map is stored as a JSON column.
type Map map[string]any

func (m Map) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *Map) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("metadata: cannot scan %T", src)
	}
	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, m)
}
