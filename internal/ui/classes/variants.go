package classes

// VariantMap maps the members of a closed enum to fixed class fragments.
// Maps are declared once per component and never modified.
type VariantMap[K comparable] map[K]string

// Get returns the fragment registered for key, or "" when key is the zero
// value or not a member of the enum.
func (m VariantMap[K]) Get(key K) string {
	return m[key]
}

// Has reports whether key is a registered member.
func (m VariantMap[K]) Has(key K) bool {
	_, ok := m[key]
	return ok
}

// Keys returns the registered members in unspecified order.
func (m VariantMap[K]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
