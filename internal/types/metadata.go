package types

// Metadata is the flat string map the catalog accepts on customers,
// subscriptions and invoices
type Metadata map[string]string

// SetIfNotEmpty sets key only when value carries something
func (m Metadata) SetIfNotEmpty(key, value string) {
	if value != "" {
		m[key] = value
	}
}
