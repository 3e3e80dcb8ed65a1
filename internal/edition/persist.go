package edition

import (
	"fmt"
	"strconv"

	"github.com/osdeploy/winedition/internal/envstore"
)

// VarNames are the deployment-environment variable names an outcome is
// persisted under. All of them are overridable from the command line so the
// tool can slot into task sequences with established naming.
type VarNames struct {
	Family  string
	Edition string
	Auto    string
	Key     string
}

// DefaultVarNames returns the conventional variable names.
func DefaultVarNames() VarNames {
	return VarNames{
		Family:  "osFamily",
		Edition: "osEdition",
		Auto:    "isAutoEdition",
		Key:     "oemKey",
	}
}

// Persist writes the outcome into the store. The edition short code and the
// auto flag are always written; the family only when one was newly chosen;
// the OEM key only when the detected edition was confirmed and a key was
// found. Writing stops at the first failure.
func (o Outcome) Persist(store envstore.Store, names VarNames) error {
	if o.Family != "" {
		if err := store.Set(names.Family, o.Family); err != nil {
			return fmt.Errorf("setting %s: %w", names.Family, err)
		}
	}

	if err := store.Set(names.Edition, o.EditionCode); err != nil {
		return fmt.Errorf("setting %s: %w", names.Edition, err)
	}

	if err := store.Set(names.Auto, strconv.FormatBool(o.AutoSelected)); err != nil {
		return fmt.Errorf("setting %s: %w", names.Auto, err)
	}

	if o.AutoSelected && o.OEMKey != "" {
		if err := store.Set(names.Key, o.OEMKey); err != nil {
			return fmt.Errorf("setting %s: %w", names.Key, err)
		}
	}

	return nil
}
