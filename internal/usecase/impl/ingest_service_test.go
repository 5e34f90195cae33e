package impl

import (
	"context"
	"testing"

	"onduty/internal/domain/entity"
	"onduty/internal/domain/repository"
	"onduty/internal/domain/service"
	mockRepo "onduty/internal/mocks/repository"
	mockSvc "onduty/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passthroughTxManager runs the callback with a factory returning the given
// repository, without any transaction machinery.
func passthroughTxManager(t *testing.T, facilityRepo repository.FacilityRepository) repository.TransactionManager {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewFacilityRepository().Return(facilityRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func TestCollect_PagesThroughSource(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	page1 := []*entity.Facility{pharmacyAt("C-1", originLat, originLon), pharmacyAt("C-2", originLat, originLon)}
	page2 := []*entity.Facility{pharmacyAt("C-3", originLat, originLon)}

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().FetchPage(mock.Anything, 1, 1000).Return(page1, true, nil)
	source.EXPECT().FetchPage(mock.Anything, 2, 1000).Return(page2, false, nil)

	facilityRepo.EXPECT().UpsertFacilities(mock.Anything, page1).Return(nil)
	facilityRepo.EXPECT().UpsertFacilities(mock.Anything, page2).Return(nil)

	uc := NewIngestService(passthroughTxManager(t, facilityRepo), []service.FacilitySource{source}, newSearchConfig(), newDiscardLogger())

	report, err := uc.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.Saved[entity.CategoryPharmacy])
	assert.Equal(t, 2, report.Pages[entity.CategoryPharmacy])
}

func TestCollect_EmptyFinalPage(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	page1 := []*entity.Facility{pharmacyAt("C-1", originLat, originLon)}

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().FetchPage(mock.Anything, 1, 1000).Return(page1, true, nil)
	source.EXPECT().FetchPage(mock.Anything, 2, 1000).Return(nil, false, nil)

	facilityRepo.EXPECT().UpsertFacilities(mock.Anything, page1).Return(nil)

	uc := NewIngestService(passthroughTxManager(t, facilityRepo), []service.FacilitySource{source}, newSearchConfig(), newDiscardLogger())

	report, err := uc.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Saved[entity.CategoryPharmacy])
	assert.Equal(t, 1, report.Pages[entity.CategoryPharmacy])
}

func TestCollect_SourceFailureAborts(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().FetchPage(mock.Anything, 1, 1000).Return(nil, false, errors.New("registry down"))

	uc := NewIngestService(passthroughTxManager(t, facilityRepo), []service.FacilitySource{source}, newSearchConfig(), newDiscardLogger())

	_, err := uc.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pharmacy page 1")
}

func TestCollect_StoreFailureAborts(t *testing.T) {
	facilityRepo := mockRepo.NewMockFacilityRepository(t)

	page1 := []*entity.Facility{pharmacyAt("C-1", originLat, originLon)}

	source := mockSvc.NewMockFacilitySource(t)
	source.EXPECT().Category().Return(entity.CategoryPharmacy)
	source.EXPECT().FetchPage(mock.Anything, 1, 1000).Return(page1, true, nil)

	facilityRepo.EXPECT().UpsertFacilities(mock.Anything, page1).Return(errors.New("deadlock"))

	uc := NewIngestService(passthroughTxManager(t, facilityRepo), []service.FacilitySource{source}, newSearchConfig(), newDiscardLogger())

	_, err := uc.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store pharmacy page 1")
}
