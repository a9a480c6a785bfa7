package megacli

// Record is one parsed report block: a flat map from normalized property
// names to coerced values. Values are nil, bool, int64, float64 or string.
type Record map[string]any

// Int returns the property as an int64 if it was coerced to one.
func (r Record) Int(key string) (int64, bool) {
	v, ok := r[key].(int64)
	return v, ok
}

// Float returns the property as a float64. Integer properties are widened.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the property as a bool if it was coerced to one.
func (r Record) Bool(key string) (bool, bool) {
	v, ok := r[key].(bool)
	return v, ok
}

// String returns the property as a string if it stayed one.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// ID returns the record's own identifier, or -1 when absent.
func (r Record) ID() int64 {
	if v, ok := r.Int("id"); ok {
		return v
	}
	return -1
}

// AdapterID returns the identifier of the adapter that reported this
// record, or -1 when absent. Adapter records report their own ID.
func (r Record) AdapterID() int64 {
	if v, ok := r.Int("adapter_id"); ok {
		return v
	}
	return -1
}
