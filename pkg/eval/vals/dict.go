package vals

// Dict is a mutable mapping that preserves insertion order. Keys are located
// through DJB hash buckets and compared with Equal, so any hashable value
// can be a key.
type Dict struct {
	index   map[uint32][]int
	entries []dictEntry
	live    int
}

type dictEntry struct {
	key, value any
	deleted    bool
}

// NewDict returns a new empty dict.
func NewDict() *Dict {
	return &Dict{index: make(map[uint32][]int)}
}

// Len returns the number of entries.
func (d *Dict) Len() int { return d.live }

func (d *Dict) find(k any) (int, uint32, error) {
	h, err := Hash(k)
	if err != nil {
		return -1, 0, err
	}
	for _, i := range d.index[h] {
		if !d.entries[i].deleted && Equal(d.entries[i].key, k) {
			return i, h, nil
		}
	}
	return -1, h, nil
}

// Index returns the value mapped to k and whether the key is present.
// An unhashable key is simply not present.
func (d *Dict) Index(k any) (any, bool) {
	i, _, err := d.find(k)
	if err != nil || i == -1 {
		return nil, false
	}
	return d.entries[i].value, true
}

// Has reports whether the key is present.
func (d *Dict) Has(k any) bool {
	_, ok := d.Index(k)
	return ok
}

// Set maps k to v, overwriting an existing entry for the key. It errors when
// the key is unhashable.
func (d *Dict) Set(k, v any) error {
	i, h, err := d.find(k)
	if err != nil {
		return err
	}
	if i != -1 {
		d.entries[i].value = v
		return nil
	}
	d.index[h] = append(d.index[h], len(d.entries))
	d.entries = append(d.entries, dictEntry{key: k, value: v})
	d.live++
	return nil
}

// Del removes the entry for k and reports whether one was present.
func (d *Dict) Del(k any) bool {
	i, _, err := d.find(k)
	if err != nil || i == -1 {
		return false
	}
	d.entries[i].deleted = true
	d.live--
	return true
}

// Each calls f with each key-value pair in insertion order, stopping early
// when f returns false.
func (d *Dict) Each(f func(k, v any) bool) {
	for _, e := range d.entries {
		if e.deleted {
			continue
		}
		if !f(e.key, e.value) {
			return
		}
	}
}
