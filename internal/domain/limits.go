package domain

// Limits carries the configurable validation bounds for value objects.
// Passed explicitly into constructors so validation never reads process
// globals.
type Limits struct {
	MaxRoomNameLength        int
	MaxRoomDescriptionLength int
	MaxBuildingCodeLength    int
	MaxRobisepCodeLength     int
}

// DefaultLimits mirrors the config defaults; used by tests and by callers
// that do not thread configuration through.
func DefaultLimits() Limits {
	return Limits{
		MaxRoomNameLength:        50,
		MaxRoomDescriptionLength: 250,
		MaxBuildingCodeLength:    5,
		MaxRobisepCodeLength:     30,
	}
}
