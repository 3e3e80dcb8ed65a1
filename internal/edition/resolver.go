package edition

import (
	"fmt"
)

// BlankLabel is the unselected placeholder entry shown at the top of each
// dropdown. Confirmation is refused while it is selected.
const BlankLabel = ""

// Outcome is the final decision produced by one run. It is the sole
// externally persisted artifact.
type Outcome struct {
	// Family is the chosen OS family, empty when family selection was
	// skipped or pre-supplied.
	Family string
	// EditionCode is a catalog short code.
	EditionCode string
	// AutoSelected reports whether the detected edition was confirmed
	// rather than picked manually.
	AutoSelected bool
	// OEMKey carries the detected product key, only for auto selections.
	OEMKey string
}

// Resolver combines a detection result with the user's dropdown choices into
// an Outcome. It owns the option lists the dialog displays, so the synthetic
// "Auto" entry and the blank-guard rule live here rather than in the UI.
type Resolver struct {
	// Editions is the selectable edition catalog.
	Editions Catalog
	// Families is the selectable family catalog; nil disables family
	// selection entirely.
	Families Catalog
	// DefaultFamily pre-selects a family entry by display name.
	DefaultFamily string
	// FamilyBlankLabel is the display text of the unselected family
	// placeholder, e.g. "Unknown". Empty means a bare blank entry.
	FamilyBlankLabel string
	// Detection is the parsed report, possibly disabled.
	Detection DetectionResult
}

func (r *Resolver) familyBlank() string {
	if r.FamilyBlankLabel != "" {
		return r.FamilyBlankLabel
	}

	return BlankLabel
}

// AutoLabel returns the synthesized dropdown entry for confirming the
// detected edition.
func (r *Resolver) AutoLabel() string {
	return fmt.Sprintf("Auto (Detected: %s)", r.Detection.EditionDisplay)
}

// EditionOptions returns the edition dropdown entries: the blank placeholder,
// the Auto entry when detection succeeded, then the catalog in order.
func (r *Resolver) EditionOptions() []string {
	opts := []string{BlankLabel}
	if r.Detection.Enabled {
		opts = append(opts, r.AutoLabel())
	}

	return append(opts, r.Editions.Displays()...)
}

// DefaultEditionIndex returns the initially selected edition option: the Auto
// entry when detection succeeded, the blank placeholder otherwise.
func (r *Resolver) DefaultEditionIndex() int {
	if r.Detection.Enabled {
		return 1
	}

	return 0
}

// FamilyOptions returns the family dropdown entries, or nil when family
// selection is disabled.
func (r *Resolver) FamilyOptions() []string {
	if r.Families == nil {
		return nil
	}

	return append([]string{r.familyBlank()}, r.Families.Displays()...)
}

// DefaultFamilyIndex returns the initially selected family option.
func (r *Resolver) DefaultFamilyIndex() int {
	if r.DefaultFamily == "" {
		return 0
	}

	for i, name := range r.Families.Displays() {
		if name == r.DefaultFamily {
			return i + 1 // account for the blank placeholder
		}
	}

	return 0
}

// ConfirmEnabled reports whether the confirmation action is permitted for the
// current dropdown selections. The blank placeholder is the sole guard: every
// visible selector must have a non-blank choice.
func (r *Resolver) ConfirmEnabled(editionSel, familySel string) bool {
	if editionSel == BlankLabel {
		return false
	}

	if r.Families != nil && (familySel == BlankLabel || familySel == r.familyBlank()) {
		return false
	}

	return true
}

// Resolve produces the Outcome for a confirmed pair of selections.
//
// Selecting the Auto entry takes the short code and product key from the
// detection result. Any other entry is an exact-match catalog lookup; the
// detected key is deliberately discarded for manual picks.
func (r *Resolver) Resolve(editionSel, familySel string) (Outcome, error) {
	if !r.ConfirmEnabled(editionSel, familySel) {
		return Outcome{}, fmt.Errorf("confirmation requires a non-blank selection")
	}

	out := Outcome{}

	if r.Families != nil {
		code, ok := r.Families.Lookup(familySel)
		if !ok {
			return Outcome{}, fmt.Errorf("unknown OS family %q", familySel)
		}
		out.Family = code
	}

	if r.Detection.Enabled && editionSel == r.AutoLabel() {
		out.EditionCode = r.Detection.EditionCode
		out.AutoSelected = true
		out.OEMKey = r.Detection.OEMKey

		return out, nil
	}

	code, ok := r.Editions.Lookup(editionSel)
	if !ok {
		return Outcome{}, fmt.Errorf("unknown edition %q", editionSel)
	}
	out.EditionCode = code

	return out, nil
}
