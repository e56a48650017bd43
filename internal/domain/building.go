package domain

import (
	"database/sql"
	"regexp"
	"strings"
)

// Building entity (buildings table). Width/Length bound the grid of every
// floor in the building.
type Building struct {
	BuildingID  string         `db:"building_id"`
	Code        string         `db:"code"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	Width       int            `db:"width"`
	Length      int            `db:"length"`
}

var buildingCodePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// ValidateBuildingCode building codes are short alphanumeric identifiers,
// unique across the system.
func ValidateBuildingCode(raw string, limits Limits) (string, error) {
	if len(raw) < 1 || len(raw) > limits.MaxBuildingCodeLength {
		return "", Invalid("building code must have between 1 and %d characters", limits.MaxBuildingCodeLength)
	}
	if strings.TrimSpace(raw) == "" {
		return "", Invalid("building code must not contain only whitespace")
	}
	if !buildingCodePattern.MatchString(raw) {
		return "", Invalid("building code must contain only alphanumeric characters and spaces")
	}
	return strings.TrimSpace(raw), nil
}
