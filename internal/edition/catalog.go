// Package edition contains the OEM edition detection and selection logic.
//
// A Catalog is an ordered list of (display name, short code) pairs. Order is
// significant: detection matches display names as substrings of the free-form
// edition text reported by the key-reading tool, preferring the longest
// candidate with catalog order breaking ties. The specific "Pro ..." variants
// must outrank the bare "Pro" entry or "Pro Education" would resolve to
// "pro".
package edition

// Entry pairs a human-readable edition name with the short code persisted to
// the deployment environment.
type Entry struct {
	Display string
	Code    string
}

// Catalog is an ordered list of edition entries. The zero value is usable.
type Catalog []Entry

// DefaultEditions returns the Windows edition catalog in match-priority order.
func DefaultEditions() Catalog {
	return Catalog{
		{Display: "Home", Code: "home"},
		{Display: "Education", Code: "edu"},
		{Display: "Enterprise", Code: "ent"},
		{Display: "Pro for Workstations", Code: "prows"},
		{Display: "Pro Education", Code: "proedu"},
		{Display: "Pro", Code: "pro"},
	}
}

// DefaultFamilies returns the OS family catalog. Family short codes are the
// display names themselves; deployment sequences key off the full name.
func DefaultFamilies() Catalog {
	return Catalog{
		{Display: "Windows 10", Code: "Windows 10"},
		{Display: "Windows 11", Code: "Windows 11"},
	}
}

// Lookup returns the short code for an exact display-name match.
func (c Catalog) Lookup(display string) (string, bool) {
	for _, e := range c {
		if e.Display == display {
			return e.Code, true
		}
	}

	return "", false
}

// Displays returns the display names in catalog order.
func (c Catalog) Displays() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Display
	}

	return names
}
