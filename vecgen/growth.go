package vecgen

// NextCapacity is the growth rule emitted into every add function:
//
//	new_cap = cap + cap/2
//	if new_cap <= len: new_cap = len + 1
//
// Plain 1.5x growth with truncation never leaves capacity 0 or 1, so the
// len+1 floor guarantees progress after deinit or with INITIAL_CAP 1.
func NextCapacity(capacity, length uint64) uint64 {
	next := capacity + capacity/2
	if next <= length {
		next = length + 1
	}
	return next
}

// growthStatements is the C rendition of NextCapacity, indented for the add body
const growthStatements = `    size_t new_cap = self->cap + self->cap / 2;
    if (new_cap <= self->len) {
      new_cap = self->len + 1;
    }
`
