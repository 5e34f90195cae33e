package registry

import (
	"context"
	"net/url"
	"strconv"

	"onduty/internal/domain/entity"
	"onduty/internal/domain/service"
)

const pharmacyListPath = "/ErmctInsttInfoInqireService/getParmacyListInfoInqire"

// pharmacyAliases: the pharmacy endpoint is the well-behaved one and sticks
// to a single spelling per field.
var pharmacyAliases = fieldAliases{
	name:    []string{"dutyName"},
	address: []string{"dutyAddr"},
	phone:   []string{"dutyTel1"},
	lat:     []string{"wgs84Lat"},
	lon:     []string{"wgs84Lon"},
}

type pharmacySource struct {
	client *Client
}

// NewPharmacySource creates the FacilitySource for the national pharmacy list.
func NewPharmacySource(client *Client) service.FacilitySource {
	return &pharmacySource{client: client}
}

func (s *pharmacySource) Category() entity.Category {
	return entity.CategoryPharmacy
}

func (s *pharmacySource) FetchPage(ctx context.Context, page, size int) ([]*entity.Facility, bool, error) {
	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(page))
	params.Set("numOfRows", strconv.Itoa(size))

	items, total, err := s.client.fetch(ctx, pharmacyListPath, params)
	if err != nil {
		return nil, false, err
	}

	more := len(items) > 0 && int64(page)*int64(size) < total

	return mapItems(items, entity.CategoryPharmacy, pharmacyAliases), more, nil
}

func (s *pharmacySource) FetchRegion(ctx context.Context, city, district string) ([]*entity.Facility, error) {
	params := url.Values{}
	params.Set("Q0", city)
	params.Set("Q1", district)
	params.Set("pageNo", "1")
	params.Set("numOfRows", "500")

	items, _, err := s.client.fetch(ctx, pharmacyListPath, params)
	if err != nil {
		return nil, err
	}

	return mapItems(items, entity.CategoryPharmacy, pharmacyAliases), nil
}
