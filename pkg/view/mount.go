package view

import "sync"

// DefaultMountSelector is the host-page hook the rendered fragment is
// associated with when the caller does not provide one.
const DefaultMountSelector = ".js-program-admin"

// Mount is the destination for rendered list markup. The host owns the mount
// point; the view only ever replaces its contents wholesale.
type Mount interface {
	Selector() string
	Replace(markup []byte) error
	Clear() error
}

// Fragment is an in-memory Mount. It stands in for a document node so the
// render flow stays testable without a real page, and doubles as the buffer
// HTTP handlers serve from.
type Fragment struct {
	mu       sync.RWMutex
	selector string
	contents []byte
}

// Ensure the implementation satisfies the Mount contract.
var _ Mount = (*Fragment)(nil)

// NewFragment constructs a Fragment bound to the given selector. An empty
// selector falls back to DefaultMountSelector.
func NewFragment(selector string) *Fragment {
	if selector == "" {
		selector = DefaultMountSelector
	}
	return &Fragment{selector: selector}
}

// Selector returns the host-page selector this fragment stands in for.
func (f *Fragment) Selector() string {
	return f.selector
}

// Replace swaps the full contents of the mount with markup.
func (f *Fragment) Replace(markup []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents = append([]byte(nil), markup...)
	return nil
}

// Clear removes the mounted markup.
func (f *Fragment) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contents = nil
	return nil
}

// Contents returns a copy of the currently mounted markup.
func (f *Fragment) Contents() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.contents == nil {
		return nil
	}
	return append([]byte(nil), f.contents...)
}
