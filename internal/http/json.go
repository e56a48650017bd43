package httpapi

import (
	"encoding/json"

	"github.com/gibs11/robdronego/internal/domain"
)

// JSON shapes for the API. Nullable columns are omitted when unset,
// matching the frontend's expectations.

func roomToJSON(r *domain.Room) map[string]any {
	return map[string]any{
		"roomId":      r.RoomID,
		"floorId":     r.FloorID,
		"name":        r.Name.String(),
		"description": r.Description.String(),
		"category":    string(r.Category),
		"dimensions": map[string]any{
			"initialPosition": positionToJSON(r.Dimensions.Initial),
			"finalPosition":   positionToJSON(r.Dimensions.Final),
		},
		"doorPosition":    positionToJSON(r.DoorPosition),
		"doorOrientation": string(r.DoorOrientation),
	}
}

func positionToJSON(p domain.Position) map[string]int {
	return map[string]int{"x": p.X, "y": p.Y}
}

func buildingToJSON(b *domain.Building) map[string]any {
	m := map[string]any{
		"buildingId": b.BuildingID,
		"code":       b.Code,
		"width":      b.Width,
		"length":     b.Length,
	}
	if b.Name.Valid {
		m["name"] = b.Name.String
	}
	if b.Description.Valid {
		m["description"] = b.Description.String
	}
	return m
}

func floorToJSON(f *domain.Floor) map[string]any {
	m := map[string]any{
		"floorId":    f.FloorID,
		"buildingId": f.BuildingID,
		"number":     f.Number,
		"width":      f.Width,
		"length":     f.Length,
	}
	if f.Description.Valid {
		m["description"] = f.Description.String
	}
	return m
}

func elevatorToJSON(e *domain.Elevator) map[string]any {
	m := map[string]any{
		"elevatorId": e.ElevatorID,
		"buildingId": e.BuildingID,
		"floorIds":   e.FloorIDs,
		"footprint": map[string]any{
			"initialPosition": positionToJSON(e.Footprint.Initial),
			"finalPosition":   positionToJSON(e.Footprint.Final),
		},
	}
	if e.Brand.Valid {
		m["brand"] = e.Brand.String
	}
	if e.Model.Valid {
		m["model"] = e.Model.String
	}
	if e.SerialNumber.Valid {
		m["serialNumber"] = e.SerialNumber.String
	}
	return m
}

func passageToJSON(p *domain.Passage) map[string]any {
	return map[string]any{
		"passageId": p.PassageID,
		"floorAId":  p.FloorAID,
		"floorBId":  p.FloorBID,
		"footprintA": map[string]any{
			"initialPosition": positionToJSON(p.FootprintA.Initial),
			"finalPosition":   positionToJSON(p.FootprintA.Final),
		},
		"footprintB": map[string]any{
			"initialPosition": positionToJSON(p.FootprintB.Initial),
			"finalPosition":   positionToJSON(p.FootprintB.Final),
		},
	}
}

func robisepToJSON(r *domain.Robisep) map[string]any {
	m := map[string]any{
		"robisepId": r.RobisepID,
		"code":      r.Code,
		"nickname":  r.Nickname,
		"state":     string(r.State),
	}
	if r.SerialNumber.Valid {
		m["serialNumber"] = r.SerialNumber.String
	}
	if r.RoomID.Valid {
		m["roomId"] = r.RoomID.String
	}
	return m
}

func taskToJSON(t *domain.Task) map[string]any {
	m := map[string]any{
		"taskId":         t.TaskID,
		"code":           t.Code,
		"type":           string(t.Type),
		"state":          string(t.State),
		"requesterEmail": t.RequesterEmail,
	}
	if t.Description.Valid {
		m["description"] = t.Description.String
	}
	if t.PickupRoomID.Valid {
		m["pickupRoomId"] = t.PickupRoomID.String
	}
	if t.DeliveryRoomID.Valid {
		m["deliveryRoomId"] = t.DeliveryRoomID.String
	}
	if t.RobisepID.Valid {
		m["robisepId"] = t.RobisepID.String
	}
	if t.PlannedRoute.Valid {
		m["plannedRoute"] = json.RawMessage(t.PlannedRoute.String)
	}
	return m
}
