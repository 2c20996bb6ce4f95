package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// OpaqueID is a server-assigned identifier; backends send it either as a
// string or as a number.
type OpaqueID string

func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OpaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OpaqueID(n.String())
	return nil
}

func (id OpaqueID) String() string { return string(id) }

func (id OpaqueID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}
