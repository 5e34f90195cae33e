package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"onduty/config"
	"onduty/internal/domain/entity"
	logs "onduty/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Registry: &config.RegistryConfig{
			BaseURL:    srv.URL,
			ServiceKey: "test-key",
			PageSize:   1000,
			Timeout:    5 * time.Second,
		},
	}

	return NewClient(cfg, logs.NewNopLogger())
}

func registryBody(totalCount int, items string) string {
	return fmt.Sprintf(`{
		"response": {
			"header": {"resultCode": "00", "resultMsg": "NORMAL SERVICE."},
			"body": {"items": %s, "totalCount": %d}
		}
	}`, items, totalCount)
}

func TestFetchPage_ItemArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pharmacyListPath, r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("serviceKey"))
		assert.Equal(t, "json", r.URL.Query().Get("_type"))
		w.Write([]byte(registryBody(2, `{"item": [
			{"hpid": "C1100001", "dutyName": "서울약국", "dutyAddr": "서울특별시 강남구", "dutyTel1": "02-555-0001",
			 "wgs84Lat": "37.498095", "wgs84Lon": "127.027610",
			 "dutyTime1s": "0900", "dutyTime1c": "1800"},
			{"hpid": "C1100002", "dutyName": "강남약국"}
		]}`)))
	})

	source := NewPharmacySource(client)
	facilities, more, err := source.FetchPage(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, facilities, 2)

	first := facilities[0]
	assert.Equal(t, "C1100001", first.ID)
	assert.Equal(t, "서울약국", first.Name)
	assert.Equal(t, entity.CategoryPharmacy, first.Category)
	require.NotNil(t, first.Location)
	assert.InDelta(t, 37.498095, first.Location.Latitude, 1e-9)
	require.NotNil(t, first.Hours.Slot(entity.SlotMonday))
	assert.Equal(t, "0900", first.Hours.Slot(entity.SlotMonday).Open)

	second := facilities[1]
	assert.Nil(t, second.Location)
	assert.Nil(t, second.Hours.Slot(entity.SlotMonday))
}

// A single-record page arrives as an object, not a one-element array.
func TestFetchPage_SingleItemObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(registryBody(1, `{"item": {"hpid": "C1100001", "dutyName": "서울약국"}}`)))
	})

	source := NewPharmacySource(client)
	facilities, more, err := source.FetchPage(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.False(t, more)
	require.Len(t, facilities, 1)
	assert.Equal(t, "C1100001", facilities[0].ID)
}

// An empty result set renders "items" as an empty string.
func TestFetchPage_EmptyItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(registryBody(0, `""`)))
	})

	source := NewPharmacySource(client)
	facilities, more, err := source.FetchPage(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Empty(t, facilities)
}

func TestFetchPage_MorePages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(registryBody(2500, `{"item": [{"hpid": "C1100001"}]}`)))
	})

	source := NewPharmacySource(client)
	_, more, err := source.FetchPage(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.True(t, more)

	_, more, err = source.FetchPage(context.Background(), 3, 1000)
	require.NoError(t, err)
	assert.False(t, more)
}

func TestFetchPage_RegistryError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"response": {"header": {"resultCode": "22", "resultMsg": "LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS"}}}`))
	})

	source := NewPharmacySource(client)
	_, _, err := source.FetchPage(context.Background(), 1, 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "22")
}

func TestFetchPage_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	source := NewPharmacySource(client)
	_, _, err := source.FetchPage(context.Background(), 1, 1000)
	require.Error(t, err)
}

// The hospital endpoint mixes two vocabularies; both spellings must land in
// the same canonical fields, and numeric duty times must keep their digits.
func TestHospitalFieldVariants(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(registryBody(2, `{"item": [
			{"hpid": "A1100001", "dutyName": "서울병원", "dutyAddr": "서울특별시 서초구",
			 "dutyTel1": "02-555-1001", "wgs84Lat": "37.49", "wgs84Lon": "127.01"},
			{"hpid": "A1100002", "yadmNm": "강남병원", "addr": "서울특별시 강남구",
			 "telno": "02-555-1002", "YPos": "37.50", "XPos": "127.04",
			 "dutyTime1s": 900, "dutyTime1c": 1800}
		]}`)))
	})

	source := NewHospitalSource(client)
	facilities, _, err := source.FetchPage(context.Background(), 1, 1000)
	require.NoError(t, err)
	require.Len(t, facilities, 2)

	modern := facilities[0]
	assert.Equal(t, "서울병원", modern.Name)
	require.NotNil(t, modern.Location)

	legacy := facilities[1]
	assert.Equal(t, "강남병원", legacy.Name)
	assert.Equal(t, "서울특별시 강남구", legacy.Address)
	assert.Equal(t, "02-555-1002", legacy.Phone)
	require.NotNil(t, legacy.Location)
	assert.InDelta(t, 37.50, legacy.Location.Latitude, 1e-9)
	assert.InDelta(t, 127.04, legacy.Location.Longitude, 1e-9)

	// Bare-number duty times survive as digit strings.
	require.NotNil(t, legacy.Hours.Slot(entity.SlotMonday))
	assert.Equal(t, "900", legacy.Hours.Slot(entity.SlotMonday).Open)
	assert.Equal(t, "1800", legacy.Hours.Slot(entity.SlotMonday).Close)
}

func TestFetchRegion_SendsDivisionParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "서울특별시", r.URL.Query().Get("Q0"))
		assert.Equal(t, "강남구", r.URL.Query().Get("Q1"))
		w.Write([]byte(registryBody(1, `{"item": {"hpid": "C1100001", "dutyName": "서울약국"}}`)))
	})

	source := NewPharmacySource(client)
	facilities, err := source.FetchRegion(context.Background(), "서울특별시", "강남구")
	require.NoError(t, err)
	require.Len(t, facilities, 1)
}

func TestBuildFacility(t *testing.T) {
	toRaw := func(s string) rawItem {
		var it rawItem
		require.NoError(t, json.Unmarshal([]byte(s), &it))

		return it
	}

	t.Run("missing id drops record", func(t *testing.T) {
		it := toRaw(`{"dutyName": "이름만약국"}`)
		assert.Nil(t, buildFacility(it, entity.CategoryPharmacy, pharmacyAliases, time.Now()))
	})

	t.Run("unparseable coordinates degrade to no location", func(t *testing.T) {
		it := toRaw(`{"hpid": "C1", "wgs84Lat": "notanumber", "wgs84Lon": "127.0"}`)
		f := buildFacility(it, entity.CategoryPharmacy, pharmacyAliases, time.Now())
		require.NotNil(t, f)
		assert.Nil(t, f.Location)
	})

	t.Run("out of range coordinates degrade to no location", func(t *testing.T) {
		it := toRaw(`{"hpid": "C1", "wgs84Lat": "95.0", "wgs84Lon": "127.0"}`)
		f := buildFacility(it, entity.CategoryPharmacy, pharmacyAliases, time.Now())
		require.NotNil(t, f)
		assert.Nil(t, f.Location)
	})

	t.Run("one sided hours are kept raw for later degradation", func(t *testing.T) {
		it := toRaw(`{"hpid": "C1", "dutyTime1s": "0900"}`)
		f := buildFacility(it, entity.CategoryPharmacy, pharmacyAliases, time.Now())
		require.NotNil(t, f)
		require.NotNil(t, f.Hours.Slot(entity.SlotMonday))
		assert.Equal(t, "0900", f.Hours.Slot(entity.SlotMonday).Open)
		assert.Equal(t, "", f.Hours.Slot(entity.SlotMonday).Close)
	})
}
