package directus

import (
	"encoding/json"
	"fmt"
)

// itemID accepts both string and numeric primary keys, since Directus
// collections may use either depending on how they were created.
type itemID string

func (id *itemID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty id value")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = itemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*id = itemID(n.String())
	return nil
}

func (id itemID) String() string { return string(id) }

// RawItem is a schedule row exactly as Directus returns it.
// Timestamps stay raw strings here; parsing happens in the mapper so a
// malformed value degrades to an absent bound instead of failing the fetch.
type RawItem struct {
	ID          itemID  `json:"id"`
	Event       string  `json:"event"`
	Description string  `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	IsAllDay    bool    `json:"is_all_day"`
}

// listResponse is the Directus items envelope.
type listResponse struct {
	Data []RawItem `json:"data"`
}

// itemFields is the field selection requested from Directus.
const itemFields = "id,event,description,start_time,end_time,is_all_day"
