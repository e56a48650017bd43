package domain

// Passage entity (passages table). Connects two floors of different
// buildings; occupies a footprint on each side.
type Passage struct {
	PassageID  string `db:"passage_id"`
	FloorAID   string `db:"floor_a_id"`
	FloorBID   string `db:"floor_b_id"`
	FootprintA RoomDimensions
	FootprintB RoomDimensions
}

// FootprintOn returns the footprint this passage occupies on the given
// floor, if any.
func (p *Passage) FootprintOn(floorID string) (RoomDimensions, bool) {
	switch floorID {
	case p.FloorAID:
		return p.FootprintA, true
	case p.FloorBID:
		return p.FootprintB, true
	default:
		return RoomDimensions{}, false
	}
}
