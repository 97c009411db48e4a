package player

import "fmt"

// Collection is an ordered set of records keyed by name. Order is the
// first time each name was added; re-adding a name replaces its record
// in place.
type Collection struct {
	order []string
	index map[string]int
	items []Record
}

func NewCollection(records ...Record) (Collection, error) {
	c := Collection{index: make(map[string]int, len(records))}
	for _, r := range records {
		if err := c.add(r); err != nil {
			return Collection{}, err
		}
	}
	return c, nil
}

// Builder accumulates records for a Collection.
type Builder struct {
	c Collection
}

func NewBuilder() *Builder {
	return &Builder{c: Collection{index: make(map[string]int)}}
}

// Put adds or replaces the record for r.Name.
func (b *Builder) Put(r Record) error {
	return b.c.add(r)
}

// Collection returns the built collection. The builder must not be used
// afterwards.
func (b *Builder) Collection() Collection {
	out := b.c
	b.c = Collection{index: make(map[string]int)}
	return out
}

func (c *Collection) add(r Record) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("add player record: %w", err)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if pos, ok := c.index[r.Name]; ok {
		c.items[pos] = r
		return nil
	}
	c.index[r.Name] = len(c.items)
	c.order = append(c.order, r.Name)
	c.items = append(c.items, r)
	return nil
}

func (c Collection) Len() int {
	return len(c.items)
}

// Names returns player names in collection order.
func (c Collection) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c Collection) Get(name string) (Record, bool) {
	pos, ok := c.index[name]
	if !ok {
		return Record{}, false
	}
	return c.items[pos], true
}

// Records returns a copy of the records in collection order.
func (c Collection) Records() []Record {
	out := make([]Record, len(c.items))
	copy(out, c.items)
	return out
}
