package loadout

import (
	"fmt"
	"maps"
	"sync"

	"scdb-loader/core/content"
	"scdb-loader/core/parser"

	"golang.org/x/sync/singleflight"
)

// Visited is the set of normalized loadout paths on the current expansion
// path.
type Visited map[string]bool

type cached struct {
	doc *loadoutFile
	err error
}

// Resolver expands loadouts below one content tree. Parsed files are cached
// by normalized path, so a file shared by many entities is read once.
type Resolver struct {
	tree *content.Tree

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]cached
}

// NewResolver creates a Resolver for tree.
func NewResolver(tree *content.Tree) *Resolver {
	return &Resolver{tree: tree, cache: make(map[string]cached)}
}

// Key returns the normalized form of a loadout reference.
func (r *Resolver) Key(ref string) string {
	return content.NormalizeRef(ref, r.tree.Config().DataDir)
}

// Expand expands the loadout file ref. visited may be nil. A root that is
// already in visited yields a truncated slot. A missing root returns
// parser.ErrMissingAsset and a malformed one a *parser.ParseError.
func (r *Resolver) Expand(ref string, visited Visited) (*Slot, error) {
	path := r.clone(visited)
	key := r.Key(ref)
	if path[key] {
		return &Slot{LoadoutPath: ref, Truncated: true}, nil
	}

	doc, err := r.load(ref)
	if err != nil {
		return nil, err
	}

	path[key] = true
	return &Slot{LoadoutPath: ref, Entries: r.fileItems(doc.Items, path)}, nil
}

// ExpandManual converts inline entries into a slot tree using the same rules
// as Expand.
func (r *Resolver) ExpandManual(entries []Entry, visited Visited) *Slot {
	return &Slot{Entries: r.manual(entries, r.clone(visited))}
}

// ExpandParams expands whichever form p carries. It returns nil, nil when p
// is empty.
func (r *Resolver) ExpandParams(p Params, visited Visited) (*Slot, error) {
	switch {
	case p.File != nil && p.File.Path != "":
		return r.Expand(p.File.Path, visited)
	case p.Manual != nil && len(p.Manual.Entries) > 0:
		return r.ExpandManual(p.Manual.Entries, visited), nil
	default:
		return nil, nil
	}
}

func (r *Resolver) fileItems(items []fileItem, path Visited) []*Slot {
	var slots []*Slot
	for _, it := range items {
		slot := &Slot{PortName: it.PortName, ItemName: it.ItemName}
		if it.Loadout != "" {
			r.nested(slot, it.Loadout, path)
		}
		slot.Entries = append(slot.Entries, r.fileItems(it.Items, path)...)
		slots = append(slots, slot)
	}
	return slots
}

func (r *Resolver) manual(entries []Entry, path Visited) []*Slot {
	var slots []*Slot
	for _, e := range entries {
		slot := &Slot{PortName: e.PortName, ItemName: e.ClassName}
		if e.Loadout.File != nil && e.Loadout.File.Path != "" {
			r.nested(slot, e.Loadout.File.Path, path)
		}
		if e.Loadout.Manual != nil {
			slot.Entries = append(slot.Entries, r.manual(e.Loadout.Manual.Entries, path)...)
		}
		slots = append(slots, slot)
	}
	return slots
}

// nested expands ref into slot. path is extended for the duration of the
// call and restored afterwards.
func (r *Resolver) nested(slot *Slot, ref string, path Visited) {
	slot.LoadoutPath = ref
	key := r.Key(ref)
	if path[key] {
		slot.Truncated = true
		return
	}

	doc, err := r.load(ref)
	if err != nil {
		slot.Missing = true
		return
	}

	path[key] = true
	slot.Entries = r.fileItems(doc.Items, path)
	delete(path, key)
}

func (r *Resolver) load(ref string) (*loadoutFile, error) {
	key := r.Key(ref)

	r.mu.RLock()
	c, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return c.doc, c.err
	}

	v, _, _ := r.group.Do(key, func() (any, error) {
		var c cached
		file, found := r.tree.Resolve(ref)
		if !found {
			c.err = fmt.Errorf("%w: %s", parser.ErrMissingAsset, ref)
		} else {
			c.doc, c.err = parser.Parse[loadoutFile](file)
		}

		r.mu.Lock()
		r.cache[key] = c
		r.mu.Unlock()
		return c, nil
	})

	c = v.(cached)
	return c.doc, c.err
}

func (r *Resolver) clone(visited Visited) Visited {
	if visited == nil {
		return make(Visited)
	}
	return maps.Clone(visited)
}
