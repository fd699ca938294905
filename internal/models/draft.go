package models

import "encoding/json"

// ProductDraft is the transient payload of a create or edit, alive only for
// the duration of the request that carries it. Extra holds passthrough
// columns from CSV imports; they are flattened into the JSON body sent
// upstream without interpretation.
type ProductDraft struct {
	Name        string
	Description string
	Quantity    int
	Extra       map[string]string
}

func (d ProductDraft) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"name":        d.Name,
		"description": d.Description,
		"quantity":    d.Quantity,
	}
	for k, v := range d.Extra {
		if _, taken := body[k]; !taken {
			body[k] = v
		}
	}
	return json.Marshal(body)
}
