package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"onduty/internal/domain/entity"
	domainerrors "onduty/internal/domain/errors"
	"onduty/internal/domain/repository"
	"onduty/internal/domain/service"
	mockRepo "onduty/internal/mocks/repository"
	mockSvc "onduty/internal/mocks/service"
	"onduty/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Coordinates around Gangnam station used as test fixtures.
const (
	originLat = 37.498095
	originLon = 127.027610
)

func newNeverHolidayCalendar(t *testing.T) *mockSvc.MockHolidayCalendar {
	calendar := mockSvc.NewMockHolidayCalendar(t)
	calendar.EXPECT().IsHoliday(mock.AnythingOfType("time.Time")).Return(false).Maybe()

	return calendar
}

// newTestSearchService wires the service with mocks and pins the clock to a
// Monday noon so open-status verdicts are reproducible.
func newTestSearchService(
	t *testing.T,
	facilityRepo repository.FacilityRepository,
	sources ...service.FacilitySource,
) usecase.SearchUsecase {
	uc := NewSearchService(facilityRepo, sources, newNeverHolidayCalendar(t), newSearchConfig(), newDiscardLogger())
	uc.(*searchService).now = func() time.Time { return mondayNoon }

	return uc
}

// pharmacyAt builds a located pharmacy open 09:00-18:00 on Mondays.
func pharmacyAt(id string, lat, lon float64) *entity.Facility {
	f := &entity.Facility{
		ID:       id,
		Name:     "약국 " + id,
		Category: entity.CategoryPharmacy,
		Location: &entity.Location{Latitude: lat, Longitude: lon},
	}
	f.Hours.SetSlot(entity.SlotMonday, &entity.DutyHours{Open: "0900", Close: "1800"})

	return f
}

// closedPharmacyAt builds a located pharmacy with no hours on record.
func closedPharmacyAt(id string, lat, lon float64) *entity.Facility {
	return &entity.Facility{
		ID:       id,
		Name:     "약국 " + id,
		Category: entity.CategoryPharmacy,
		Location: &entity.Location{Latitude: lat, Longitude: lon},
	}
}

func TestSearchNearby_SortsByDistance(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	far := pharmacyAt("C-far", originLat+0.02, originLon)    // ~2.2 km north
	near := pharmacyAt("C-near", originLat+0.005, originLon) // ~0.6 km north
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Facility{far, near}, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		RadiusKm:  3.0,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "C-near", results[0].Facility.ID)
	assert.Equal(t, "C-far", results[1].Facility.ID)
	require.NotNil(t, results[0].DistanceKm)
	require.NotNil(t, results[1].DistanceKm)
	assert.Less(t, *results[0].DistanceKm, *results[1].DistanceKm)
	assert.NotEmpty(t, results[0].Distance)
}

// Candidates inside the bounding box but outside the circle are rejected by
// the exact distance check.
func TestSearchNearby_ExactDistanceFilter(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	inside := pharmacyAt("C-inside", originLat+0.005, originLon)
	// A box corner: within the bound but farther than the radius.
	corner := pharmacyAt("C-corner", originLat+0.026, originLon+0.033)
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Facility{inside, corner}, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		RadiusKm:  3.0,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "C-inside", results[0].Facility.ID)
}

func TestSearchNearby_SkipsUnlocatedRecords(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	located := pharmacyAt("C-located", originLat, originLon)
	unlocated := pharmacyAt("C-unlocated", 0, 0)
	unlocated.Location = nil
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Facility{unlocated, located}, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "C-located", results[0].Facility.ID)
}

// A store failure degrades to an empty result instead of an error.
func TestSearchNearby_StoreFailureDegrades(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return(nil, errors.New("connection refused"))

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchNearby_InvalidCategory(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)
	uc := newTestSearchService(t, facilityRepo)

	_, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  "clinic",
	})
	require.Error(t, err)
}

func TestSearchNearby_OpenOnly(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	open := pharmacyAt("C-open", originLat+0.002, originLon)
	closed := closedPharmacyAt("C-closed", originLat+0.001, originLon)
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Facility{open, closed}, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  entity.CategoryPharmacy,
		OpenOnly:  true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "C-open", results[0].Facility.ID)
	assert.True(t, results[0].Status.IsOpen)
}

// Open facilities sort before closed ones even when the closed one is nearer.
func TestSearchNearby_OpenBeforeClosed(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	closedNear := closedPharmacyAt("C-closed", originLat+0.001, originLon)
	openFar := pharmacyAt("C-open", originLat+0.01, originLon)
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return([]*entity.Facility{closedNear, openFar}, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "C-open", results[0].Facility.ID)
	assert.Equal(t, "C-closed", results[1].Facility.ID)
}

func TestSearchNearby_CapsResults(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	candidates := make([]*entity.Facility, 0, usecase.MaxComposedResults+20)
	for i := 0; i < usecase.MaxComposedResults+20; i++ {
		candidates = append(candidates, pharmacyAt(
			fmt.Sprintf("C-%03d", i), originLat+float64(i)*0.0001, originLon))
	}
	facilityRepo.EXPECT().
		FindWithinBound(mock.Anything, entity.CategoryPharmacy, mock.AnythingOfType("orb.Bound")).
		Return(candidates, nil)

	uc := newTestSearchService(t, facilityRepo)

	results, err := uc.SearchNearby(context.Background(), usecase.NearbyInput{
		Latitude:  originLat,
		Longitude: originLon,
		Category:  entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	assert.Len(t, results, usecase.MaxComposedResults)
}

func TestSearchRegion_OpenFirstKeepsRegistryOrder(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().
		FetchRegion(mock.Anything, "서울특별시", "강남구").
		Return([]*entity.Facility{
			closedPharmacyAt("C-closed-1", 0, 0),
			pharmacyAt("C-open-1", 0, 0),
			closedPharmacyAt("C-closed-2", 0, 0),
			pharmacyAt("C-open-2", 0, 0),
		}, nil)

	uc := newTestSearchService(t, facilityRepo, source)

	results, err := uc.SearchRegion(context.Background(), usecase.RegionInput{
		City:     "서울특별시",
		District: "강남구",
		Category: entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Open first; within each group the registry order is preserved.
	assert.Equal(t, "C-open-1", results[0].Facility.ID)
	assert.Equal(t, "C-open-2", results[1].Facility.ID)
	assert.Equal(t, "C-closed-1", results[2].Facility.ID)
	assert.Equal(t, "C-closed-2", results[3].Facility.ID)
}

func TestSearchRegion_RegistryFailureDegrades(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().
		FetchRegion(mock.Anything, "서울특별시", "강남구").
		Return(nil, errors.New("registry timeout"))

	uc := newTestSearchService(t, facilityRepo, source)

	results, err := uc.SearchRegion(context.Background(), usecase.RegionInput{
		City:     "서울특별시",
		District: "강남구",
		Category: entity.CategoryPharmacy,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRegion_NoSourceForCategory(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)
	uc := newTestSearchService(t, facilityRepo)

	_, err := uc.SearchRegion(context.Background(), usecase.RegionInput{
		City:     "서울특별시",
		District: "강남구",
		Category: entity.CategoryHospital,
	})
	require.Error(t, err)
}

func TestGetFacility(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	facility := pharmacyAt("C1100000", originLat, originLon)
	facilityRepo.EXPECT().
		FindByID(mock.Anything, "C1100000").
		Return(facility, nil)

	uc := newTestSearchService(t, facilityRepo)

	result, weeklyHours, err := uc.GetFacility(context.Background(), "C1100000")
	require.NoError(t, err)
	assert.True(t, result.Status.IsOpen)
	require.Len(t, weeklyHours, 1)
	assert.Equal(t, "Mon 09:00 - 18:00", weeklyHours[0])
}

func TestGetFacility_NotFound(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)
	facilityRepo.EXPECT().
		FindByID(mock.Anything, "missing").
		Return(nil, repository.ErrFacilityNotFound)

	uc := newTestSearchService(t, facilityRepo)

	_, _, err := uc.GetFacility(context.Background(), "missing")
	require.ErrorIs(t, err, domainerrors.ErrFacilityNotFound)
}
