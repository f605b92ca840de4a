package program

import (
	"encoding/json"
	"fmt"
)

// Page is one page of the paginated list payload: the total count reported by
// the API, the entries on this page, and the pagination cursors. Top-level
// fields this package does not model are retained in Extra so the catalog
// model can merge them through without consuming them.
type Page struct {
	Count    int       `json:"count"`
	Next     string    `json:"next,omitempty"`
	Previous string    `json:"previous,omitempty"`
	Results  []Program `json:"results"`

	// Extra holds unrecognised top-level payload fields keyed by name.
	Extra map[string]any `json:"-"`
}

type pageAlias Page

// UnmarshalJSON decodes the known fields and captures everything else in
// Extra. A payload without results decodes to an empty page rather than an
// error.
func (p *Page) UnmarshalJSON(data []byte) error {
	var known pageAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("program: decode page: %w", err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("program: decode page fields: %w", err)
	}
	delete(raw, "count")
	delete(raw, "next")
	delete(raw, "previous")
	delete(raw, "results")

	if len(raw) > 0 {
		known.Extra = make(map[string]any, len(raw))
		for key, value := range raw {
			var decoded any
			if err := json.Unmarshal(value, &decoded); err != nil {
				return fmt.Errorf("program: decode page field %q: %w", key, err)
			}
			known.Extra[key] = decoded
		}
	}

	*p = Page(known)
	return nil
}
