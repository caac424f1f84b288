package hms

import (
	"context"
	"fmt"
	"net/url"

	"hospital-ipd-engine/pkg/istdate"
)

// CheckBedAvailability asks the store whether the bed is free on the given
// allocation date. The endpoint wants the DD-MM-YYYY form even though the
// same value is stored internally as YYYY-MM-DD.
func (c *Client) CheckBedAvailability(ctx context.Context, roomBedsID int, allocationDate istdate.Date) (bool, error) {
	query := url.Values{}
	query.Set("allocationDate", allocationDate.Display())

	raw, err := c.get(ctx, fmt.Sprintf("/api/room-beds/%d/availability", roomBedsID), query)
	if err != nil {
		return false, err
	}
	m, err := unwrapObject(raw)
	if err != nil {
		return false, err
	}
	return availabilityFromPayload(m), nil
}
