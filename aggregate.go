package equal

// All reports whether every item compares equal to the first one under
// method (default "strict"). Zero or one items are vacuously equal. Items
// are compared against items[0] only, not pairwise, so a non-transitive
// custom predicate may accept collections whose other pairs do not match.
func (r *Registry) All(items []interface{}, method ...interface{}) (bool, error) {
	p, err := r.resolveDefault(method)
	if err != nil {
		return false, err
	}
	for z := 1; z < len(items); z++ {
		if !p(items[0], items[z]) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether some pair of distinct items compares equal under
// method (default "strict"), scanning pairs (i, j), i < j, in index order.
// Fewer than two items never match.
func (r *Registry) Any(items []interface{}, method ...interface{}) (bool, error) {
	p, err := r.resolveDefault(method)
	if err != nil {
		return false, err
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if p(items[i], items[j]) {
				return true, nil
			}
		}
	}
	return false, nil
}

// All reduces items through the process-wide registry
func All(items []interface{}, method ...interface{}) (bool, error) {
	return defaultRegistry.All(items, method...)
}

// Any reduces items through the process-wide registry
func Any(items []interface{}, method ...interface{}) (bool, error) {
	return defaultRegistry.Any(items, method...)
}
