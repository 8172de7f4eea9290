package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Canonical field names a ColumnMap may target.
const (
	FieldFirstname = "firstname"
	FieldLastname  = "lastname"
	FieldEmail     = "email"
	FieldTeam      = "team"
	FieldTeamgroup = "teamgroup"
)

// ColumnMap maps source column headers to canonical field names.
// Columns whose header does not appear in the map are ignored.
type ColumnMap map[string]string

// DefaultColumnMap returns the built-in header mapping for the
// German-locale export the user directory usually arrives in.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		"Nachname": FieldLastname,
		"Vorname":  FieldFirstname,
		"E-Mail":   FieldEmail,
		"Team":     FieldTeam,
		"Gruppe":   FieldTeamgroup,
	}
}

// LoadColumnMap reads a custom header mapping from a YAML file of the
// form "Source Header: canonical_field".
func LoadColumnMap(path string) (ColumnMap, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // G304: path is operator-supplied
	if err != nil {
		return nil, err
	}

	var columns ColumnMap
	if err := yaml.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("failed to parse column map %s: %w", path, err)
	}
	return columns, nil
}
