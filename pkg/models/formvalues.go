package models

// FormValues is a submitted form body: field name to one or more string
// values. Single-item pages carry one value per field; bulk pages carry one
// value per service recipient row, aligned by index.
type FormValues map[string][]string

// Get returns the first value for the field, or "" when absent.
func (f FormValues) Get(key string) string {
	if vs, ok := f[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// At returns the value at the given row index, or "" when the field is
// absent or the row does not exist.
func (f FormValues) At(key string, index int) string {
	vs, ok := f[key]
	if !ok || index < 0 || index >= len(vs) {
		return ""
	}
	return vs[index]
}

// Has reports whether the field was submitted at all.
func (f FormValues) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Len returns the number of values submitted for the field.
func (f FormValues) Len(key string) int {
	return len(f[key])
}

// Set replaces the field with a single value.
func (f FormValues) Set(key, value string) {
	f[key] = []string{value}
}
