package equal

import (
	"reflect"
)

// Query targets are polymorphic over sequences (keys are 0-based indices),
// ordered maps and sets (a set's elements act as its keys and it has no
// values), plain Go maps, and any external Container. Scans follow the
// target's native iteration order, which determines only which match is
// found first. The probe is always the resolved predicate's first argument.

// HasKey reports whether target holds a key equal to key under method
// (default "strict")
func (r *Registry) HasKey(target, key interface{}, method ...interface{}) (bool, error) {
	p, err := r.resolveDefault(method)
	if err != nil {
		return false, err
	}
	keys, err := targetKeys(target)
	if err != nil {
		return false, err
	}
	for _, current := range keys {
		if p(key, current) {
			return true, nil
		}
	}
	return false, nil
}

// HasValue reports whether target holds a value equal to value under method
// (default "strict")
func (r *Registry) HasValue(target, value interface{}, method ...interface{}) (bool, error) {
	p, err := r.resolveDefault(method)
	if err != nil {
		return false, err
	}
	values, err := targetValues(target)
	if err != nil {
		return false, err
	}
	for _, current := range values {
		if p(value, current) {
			return true, nil
		}
	}
	return false, nil
}

// HasEntry reports whether target holds an entry whose key and value
// independently satisfy their methods. The first optional method checks the
// key (default "strict"), the second checks the value (default: same as the
// key method).
func (r *Registry) HasEntry(target, key, value interface{}, method ...interface{}) (bool, error) {
	keyMethod := interface{}(MethodStrict)
	if len(method) > 0 {
		keyMethod = method[0]
	}
	valueMethod := keyMethod
	if len(method) > 1 {
		valueMethod = method[1]
	}
	kp, err := r.Resolve(keyMethod)
	if err != nil {
		return false, err
	}
	vp, err := r.Resolve(valueMethod)
	if err != nil {
		return false, err
	}
	keys, values, err := targetEntries(target)
	if err != nil {
		return false, err
	}
	for z := range keys {
		if kp(key, keys[z]) && vp(value, values[z]) {
			return true, nil
		}
	}
	return false, nil
}

// targetKeys iterates a target's keys in its native order
func targetKeys(target interface{}) ([]interface{}, error) {
	switch t := target.(type) {
	case *Map:
		return t.Keys(), nil
	case *Set:
		return t.Keys(), nil
	case Container:
		return t.Keys(), nil
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		keys := make([]interface{}, rv.Len())
		for z := range keys {
			keys[z] = z
		}
		return keys, nil
	case reflect.Map:
		keys := make([]interface{}, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().Interface())
		}
		return keys, nil
	}
	return nil, errUnsupportedTarget(target)
}

// targetValues iterates a target's values in its native order
func targetValues(target interface{}) ([]interface{}, error) {
	switch t := target.(type) {
	case *Map:
		return t.Values(), nil
	case *Set:
		return nil, errNoValues(target)
	case Container:
		return t.Values(), nil
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]interface{}, rv.Len())
		for z := range values {
			values[z] = rv.Index(z).Interface()
		}
		return values, nil
	case reflect.Map:
		values := make([]interface{}, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			values = append(values, iter.Value().Interface())
		}
		return values, nil
	}
	return nil, errUnsupportedTarget(target)
}

// targetEntries iterates a target's entries in its native order
func targetEntries(target interface{}) (keys, values []interface{}, err error) {
	switch t := target.(type) {
	case *Map:
		keys, values = t.Entries()
		return keys, values, nil
	case *Set:
		return nil, nil, errNoValues(target)
	case Container:
		keys = t.Keys()
		values = make([]interface{}, 0, len(keys))
		for _, key := range keys {
			value, _ := t.Get(key)
			values = append(values, value)
		}
		return keys, values, nil
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		keys = make([]interface{}, rv.Len())
		values = make([]interface{}, rv.Len())
		for z := 0; z < rv.Len(); z++ {
			keys[z] = z
			values[z] = rv.Index(z).Interface()
		}
		return keys, values, nil
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().Interface())
			values = append(values, iter.Value().Interface())
		}
		return keys, values, nil
	}
	return nil, nil, errUnsupportedTarget(target)
}

// HasKey queries target through the process-wide registry
func HasKey(target, key interface{}, method ...interface{}) (bool, error) {
	return defaultRegistry.HasKey(target, key, method...)
}

// HasValue queries target through the process-wide registry
func HasValue(target, value interface{}, method ...interface{}) (bool, error) {
	return defaultRegistry.HasValue(target, value, method...)
}

// HasEntry queries target through the process-wide registry
func HasEntry(target, key, value interface{}, method ...interface{}) (bool, error) {
	return defaultRegistry.HasEntry(target, key, value, method...)
}
