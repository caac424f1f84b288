package hms

import (
	"context"
	"fmt"
	"net/http"

	"hospital-ipd-engine/internal/domain/entity"
)

func (c *Client) GetICUBedLayout(ctx context.Context) ([]entity.ICUBed, error) {
	raw, err := c.get(ctx, "/api/icu-beds/layout", nil)
	if err != nil {
		return nil, err
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, err
	}
	beds := make([]entity.ICUBed, 0, len(list))
	for _, m := range list {
		beds = append(beds, decodeICUBed(m))
	}
	return beds, nil
}

func (c *Client) CreateICUAdmission(ctx context.Context, admission *entity.ICUAdmission) (*entity.ICUAdmission, error) {
	raw, err := c.send(ctx, http.MethodPost, "/api/icu-admissions", encodeICUAdmission(admission))
	if err != nil {
		return nil, err
	}
	m, err := unwrapObject(raw)
	if err != nil {
		return nil, err
	}
	created := decodeICUAdmission(m)
	if created.ICUAdmissionID == 0 {
		return nil, fmt.Errorf("hospital store returned an ICU admission without an id")
	}
	return created, nil
}
