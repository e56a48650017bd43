package domain

import (
	"database/sql"
	"regexp"
	"strings"
)

// RobisepState lifecycle state of a robot.
type RobisepState string

const (
	RobisepStateAvailable RobisepState = "AVAILABLE"
	RobisepStateOccupied  RobisepState = "OCCUPIED"
	RobisepStateDisabled  RobisepState = "DISABLED"
)

var robisepStates = map[string]RobisepState{
	"AVAILABLE": RobisepStateAvailable,
	"OCCUPIED":  RobisepStateOccupied,
	"DISABLED":  RobisepStateDisabled,
}

func CreateRobisepState(raw string) (RobisepState, error) {
	s, ok := robisepStates[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", Invalid("invalid robisep state: %q", raw)
	}
	return s, nil
}

// Robisep entity (robiseps table). Robots are disabled, never deleted.
type Robisep struct {
	RobisepID    string         `db:"robisep_id"`
	Code         string         `db:"code"`
	Nickname     string         `db:"nickname"`
	SerialNumber sql.NullString `db:"serial_number"`
	State        RobisepState   `db:"state"`
	RoomID       sql.NullString `db:"room_id"`
}

var robisepCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateRobisepCode robot codes are unique alphanumeric identifiers with
// no spaces (they appear in MQTT topic segments).
func ValidateRobisepCode(raw string, limits Limits) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 1 || len(trimmed) > limits.MaxRobisepCodeLength {
		return "", Invalid("robisep code must have between 1 and %d characters", limits.MaxRobisepCodeLength)
	}
	if !robisepCodePattern.MatchString(trimmed) {
		return "", Invalid("robisep code must contain only alphanumeric characters")
	}
	return trimmed, nil
}
