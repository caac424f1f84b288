package hms

import (
	"context"
	"encoding/json"
	"fmt"

	"hospital-ipd-engine/internal/domain/entity"
)

// GetRoomCapacityOverview reads the per-room-type occupancy aggregate. The
// counts come back under varying key casings like everything else upstream.
func (c *Client) GetRoomCapacityOverview(ctx context.Context) (entity.CapacityOverview, error) {
	raw, err := c.get(ctx, "/api/rooms/capacity-overview", nil)
	if err != nil {
		return nil, err
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, fmt.Errorf("hospital store response decode: %w", err)
	}
	for _, key := range []string{"data", "Data"} {
		if inner, ok := outer[key]; ok {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(inner, &nested); err == nil {
				outer = nested
			}
			break
		}
	}

	overview := entity.CapacityOverview{}
	for roomType, rawCounts := range outer {
		var m payload
		if err := json.Unmarshal(rawCounts, &m); err != nil {
			continue
		}
		overview[roomType] = entity.RoomCapacity{
			Total:     intField(m, "Total"),
			Occupied:  intField(m, "Occupied"),
			Available: intField(m, "Available"),
		}
	}
	return overview, nil
}
