package program

// Collection is an ordered, insertion-order-preserving container of Program
// entries keyed by id. Setting an entry whose id is already present replaces
// the earlier entry in place instead of appending a duplicate.
//
// A Collection is not safe for concurrent mutation; the catalog model
// serialises access and hands out fresh instances on every successful fetch.
type Collection struct {
	order []string
	byID  map[string]Program
}

// NewCollection constructs a Collection pre-populated with the supplied
// entries. Entries failing Validate are returned as an error rather than
// silently dropped.
func NewCollection(entries ...Program) (*Collection, error) {
	c := &Collection{byID: make(map[string]Program, len(entries))}
	if err := c.Set(entries); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCollection panics when construction fails. Useful for fixtures.
func MustNewCollection(entries ...Program) *Collection {
	c, err := NewCollection(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Set replaces the full contents of the collection with the supplied entries.
// Prior contents are discarded even when entries is empty.
func (c *Collection) Set(entries []Program) error {
	order := make([]string, 0, len(entries))
	byID := make(map[string]Program, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		if _, seen := byID[entry.ID]; !seen {
			order = append(order, entry.ID)
		}
		byID[entry.ID] = entry
	}
	c.order = order
	c.byID = byID
	return nil
}

// Len returns the number of entries currently held.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// At returns the entry at position i in insertion order.
func (c *Collection) At(i int) (Program, bool) {
	if c == nil || i < 0 || i >= len(c.order) {
		return Program{}, false
	}
	return c.byID[c.order[i]], true
}

// Get returns the entry with the given id.
func (c *Collection) Get(id string) (Program, bool) {
	if c == nil {
		return Program{}, false
	}
	entry, ok := c.byID[id]
	return entry, ok
}

// Programs returns a copy of the entries in insertion order.
func (c *Collection) Programs() []Program {
	if c == nil || len(c.order) == 0 {
		return nil
	}
	out := make([]Program, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// IDs returns the entry ids in insertion order.
func (c *Collection) IDs() []string {
	if c == nil || len(c.order) == 0 {
		return nil
	}
	return append([]string(nil), c.order...)
}
