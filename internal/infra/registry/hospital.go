package registry

import (
	"context"
	"net/url"
	"strconv"

	"onduty/internal/domain/entity"
	"onduty/internal/domain/service"
)

const hospitalListPath = "/HsptlAsembySearchService/getHsptlMdcncListInfoInqire"

// hospitalAliases: the hospital endpoint mixes two vocabularies depending on
// the upstream provider, including x/y-named coordinates.
var hospitalAliases = fieldAliases{
	name:    []string{"dutyName", "yadmNm"},
	address: []string{"dutyAddr", "addr"},
	phone:   []string{"dutyTel1", "telno"},
	lat:     []string{"wgs84Lat", "YPos"},
	lon:     []string{"wgs84Lon", "XPos"},
}

type hospitalSource struct {
	client *Client
}

// NewHospitalSource creates the FacilitySource for the national hospital list.
func NewHospitalSource(client *Client) service.FacilitySource {
	return &hospitalSource{client: client}
}

func (s *hospitalSource) Category() entity.Category {
	return entity.CategoryHospital
}

func (s *hospitalSource) FetchPage(ctx context.Context, page, size int) ([]*entity.Facility, bool, error) {
	params := url.Values{}
	params.Set("pageNo", strconv.Itoa(page))
	params.Set("numOfRows", strconv.Itoa(size))

	items, total, err := s.client.fetch(ctx, hospitalListPath, params)
	if err != nil {
		return nil, false, err
	}

	more := len(items) > 0 && int64(page)*int64(size) < total

	return mapItems(items, entity.CategoryHospital, hospitalAliases), more, nil
}

func (s *hospitalSource) FetchRegion(ctx context.Context, city, district string) ([]*entity.Facility, error) {
	params := url.Values{}
	params.Set("Q0", city)
	params.Set("Q1", district)
	params.Set("pageNo", "1")
	params.Set("numOfRows", "500")

	items, _, err := s.client.fetch(ctx, hospitalListPath, params)
	if err != nil {
		return nil, err
	}

	return mapItems(items, entity.CategoryHospital, hospitalAliases), nil
}
