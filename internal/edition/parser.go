package edition

import (
	"regexp"
	"strings"
)

// Unknown is the placeholder used when no edition could be recognized.
const Unknown = "Unknown"

var (
	editionLine = regexp.MustCompile(`OEM Edition:\s*(.*)`)
	keyLine     = regexp.MustCompile(`OEM Key:\s*(.*)`)
)

// DetectionResult holds the outcome of parsing a detection report. It is
// immutable once produced.
type DetectionResult struct {
	// EditionCode is a catalog short code, or Unknown.
	EditionCode string
	// EditionDisplay is the matched catalog display name, or Unknown.
	EditionDisplay string
	// OEMKey is the firmware product key, empty when no key line was found.
	OEMKey string
	// Enabled reports whether auto-selection may be offered. A key alone
	// without a recognized edition does not enable it.
	Enabled bool
}

// ParseReport extracts the OEM edition and product key from the detection
// tool's report lines. The first line matching each pattern wins; all other
// lines are ignored. Absence of expected lines is never an error: the result
// simply comes back disabled.
func ParseReport(lines []string, editions Catalog) DetectionResult {
	result := DetectionResult{
		EditionCode:    Unknown,
		EditionDisplay: Unknown,
	}

	editionText := ""
	foundEdition := false
	foundKey := false

	for _, line := range lines {
		if !foundEdition {
			if m := editionLine.FindStringSubmatch(line); m != nil {
				editionText = strings.TrimSpace(m[1])
				foundEdition = true
			}
		}

		if !foundKey {
			if m := keyLine.FindStringSubmatch(line); m != nil {
				result.OEMKey = strings.TrimSpace(m[1])
				foundKey = true
			}
		}

		if foundEdition && foundKey {
			break
		}
	}

	if !foundEdition {
		return result
	}

	if entry, ok := matchEdition(editionText, editions); ok {
		result.EditionCode = entry.Code
		result.EditionDisplay = entry.Display
		result.Enabled = true
	}

	return result
}

// matchEdition maps free-form edition text to a catalog entry.
//
// OEM reports label the Home edition as "Core", so that substring maps
// straight to the Home entry. Otherwise every display name contained in the
// text is a candidate and the longest one wins, ties broken by catalog order.
// Several names are substrings of others ("Education" of "Pro Education",
// "Pro" of both "Pro ..." variants), so a plain first-match scan would
// misclassify the specific variants. Matching is deliberately case-sensitive
// substring containment: the strings this was tuned against come from
// firmware reports, and exact tokenization has never been needed.
func matchEdition(text string, editions Catalog) (Entry, bool) {
	if strings.Contains(text, "Core") {
		for _, e := range editions {
			if e.Display == "Home" {
				return e, true
			}
		}
	}

	var best Entry
	found := false

	for _, e := range editions {
		if !strings.Contains(text, e.Display) {
			continue
		}

		if !found || len(e.Display) > len(best.Display) {
			best = e
			found = true
		}
	}

	return best, found
}
