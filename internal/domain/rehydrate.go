package domain

// Rehydration constructors rebuild value objects from trusted storage.
// Values were validated when first created; repositories must not re-run
// validation on read paths.

func RehydrateRoomName(value string) RoomName {
	return RoomName{value: value}
}

func RehydrateRoomDescription(value string) RoomDescription {
	return RoomDescription{value: value}
}
