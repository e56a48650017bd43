package domain

import (
	"regexp"
	"strings"
)

var alphanumericSpaces = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// validateText applies the shared validation sequence for string value
// objects: length within [1, max], not only whitespace, alphanumerics and
// spaces only. The stored value is trimmed.
func validateText(field, raw string, max int) (string, error) {
	if len(raw) < 1 || len(raw) > max {
		return "", Invalid("%s must have between 1 and %d characters", field, max)
	}
	if strings.TrimSpace(raw) == "" {
		return "", Invalid("%s must not contain only whitespace", field)
	}
	if !alphanumericSpaces.MatchString(raw) {
		return "", Invalid("%s must contain only alphanumeric characters and spaces", field)
	}
	return strings.TrimSpace(raw), nil
}

// RoomName identifies a room; unique across the system.
type RoomName struct {
	value string
}

func CreateRoomName(raw string, limits Limits) (RoomName, error) {
	v, err := validateText("room name", raw, limits.MaxRoomNameLength)
	if err != nil {
		return RoomName{}, err
	}
	return RoomName{value: v}, nil
}

func (n RoomName) String() string { return n.value }

// RoomDescription free-text room description.
type RoomDescription struct {
	value string
}

func CreateRoomDescription(raw string, limits Limits) (RoomDescription, error) {
	v, err := validateText("room description", raw, limits.MaxRoomDescriptionLength)
	if err != nil {
		return RoomDescription{}, err
	}
	return RoomDescription{value: v}, nil
}

func (d RoomDescription) String() string { return d.value }

// RoomCategory enumerated room category.
type RoomCategory string

const (
	RoomCategoryOffice       RoomCategory = "OFFICE"
	RoomCategoryAmphitheater RoomCategory = "AMPHITHEATER"
	RoomCategoryLaboratory   RoomCategory = "LABORATORY"
	RoomCategoryOther        RoomCategory = "OTHER"
)

var roomCategories = map[string]RoomCategory{
	"OFFICE":       RoomCategoryOffice,
	"AMPHITHEATER": RoomCategoryAmphitheater,
	"LABORATORY":   RoomCategoryLaboratory,
	"OTHER":        RoomCategoryOther,
}

// CreateRoomCategory normalizes (trim + uppercase) then resolves against
// the category table.
func CreateRoomCategory(raw string) (RoomCategory, error) {
	c, ok := roomCategories[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", Invalid("invalid room category: %q", raw)
	}
	return c, nil
}

// DoorOrientation the side of the room the door faces.
type DoorOrientation string

const (
	DoorOrientationNorth DoorOrientation = "NORTH"
	DoorOrientationSouth DoorOrientation = "SOUTH"
	DoorOrientationEast  DoorOrientation = "EAST"
	DoorOrientationWest  DoorOrientation = "WEST"
)

var doorOrientations = map[string]DoorOrientation{
	"NORTH": DoorOrientationNorth,
	"SOUTH": DoorOrientationSouth,
	"EAST":  DoorOrientationEast,
	"WEST":  DoorOrientationWest,
}

func CreateDoorOrientation(raw string) (DoorOrientation, error) {
	o, ok := doorOrientations[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", Invalid("invalid door orientation: %q", raw)
	}
	return o, nil
}
