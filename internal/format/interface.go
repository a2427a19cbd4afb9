package format

// Translator maps canonical type descriptors to one format's native types.
type Translator interface {
	// Format returns the format this translator produces.
	Format() Format

	// Lookup returns the mapped type and whether descriptor had an entry.
	Lookup(descriptor string) (string, bool)

	// Translate returns the mapped type, or DefaultType when descriptor is
	// unmapped. It never fails.
	Translate(descriptor string) string

	// DefaultType is the most permissive string-like type of the format.
	DefaultType() string
}
