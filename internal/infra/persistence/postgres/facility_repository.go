package postgres

import (
	"context"

	"onduty/internal/domain/entity"
	domainerrors "onduty/internal/domain/errors"
	"onduty/internal/domain/repository"
	"onduty/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// facilityRepository implements the repository.FacilityRepository interface.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{
		db: db,
	}
}

// UpsertFacilities inserts or replaces facilities keyed by registry ID.
// Re-running an ingest over the same page must converge, so conflicting
// rows are fully overwritten.
func (repo *facilityRepository) UpsertFacilities(ctx context.Context, facilities []*entity.Facility) error {
	if len(facilities) == 0 {
		return nil
	}

	facilityModels := make([]*model.FacilityModel, 0, len(facilities))
	for _, facility := range facilities {
		facilityModels = append(facilityModels, fromFacilityDomain(facility))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(facilityModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert facilities")
	}

	return nil
}

// FindByID retrieves a single facility by its registry ID.
func (repo *facilityRepository) FindByID(ctx context.Context, id string) (*entity.Facility, error) {
	var facilityM model.FacilityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&facilityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFacilityNotFound
		}

		return nil, errors.Wrap(err, "failed to find facility by id")
	}

	return toFacilityDomain(&facilityM), nil
}

// FindWithinBound retrieves facilities of a category whose coordinates fall
// inside the bounding box. Rows without coordinates never match.
func (repo *facilityRepository) FindWithinBound(ctx context.Context, category entity.Category, bound orb.Bound) ([]*entity.Facility, error) {
	var facilityModels []*model.FacilityModel

	if err := repo.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Where("lat BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("lon BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&facilityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find facilities within bound")
	}

	facilities := make([]*entity.Facility, 0, len(facilityModels))
	for _, facilityM := range facilityModels {
		facilities = append(facilities, toFacilityDomain(facilityM))
	}

	return facilities, nil
}

// CountByCategory reports how many facilities of a category are stored.
func (repo *facilityRepository) CountByCategory(ctx context.Context, category entity.Category) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FacilityModel{}).
		Where("category = ?", string(category)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count facilities")
	}

	return count, nil
}

// --- Mapper Functions ---

// slotColumns maps schedule slots 1..8 onto the model's duty-time column pairs.
func slotColumns(data *model.FacilityModel) [entity.ScheduleSize][2]**string {
	return [entity.ScheduleSize][2]**string{
		{&data.MonOpen, &data.MonClose},
		{&data.TueOpen, &data.TueClose},
		{&data.WedOpen, &data.WedClose},
		{&data.ThuOpen, &data.ThuClose},
		{&data.FriOpen, &data.FriClose},
		{&data.SatOpen, &data.SatClose},
		{&data.SunOpen, &data.SunClose},
		{&data.HolidayOpen, &data.HolidayClose},
	}
}

// toFacilityDomain converts a GORM FacilityModel to a domain Facility entity.
func toFacilityDomain(data *model.FacilityModel) *entity.Facility {
	if data == nil {
		return nil
	}

	facility := &entity.Facility{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		Category:  entity.Category(data.Category),
		UpdatedAt: data.UpdatedAt,
	}

	if data.Lat != nil && data.Lon != nil {
		facility.Location = &entity.Location{Latitude: *data.Lat, Longitude: *data.Lon}
	}

	for i, cols := range slotColumns(data) {
		openCol, closeCol := *cols[0], *cols[1]
		if openCol == nil && closeCol == nil {
			continue
		}
		facility.Hours.SetSlot(i+1, &entity.DutyHours{
			Open:  strOrEmpty(openCol),
			Close: strOrEmpty(closeCol),
		})
	}

	return facility
}

// fromFacilityDomain converts a domain Facility entity to a GORM FacilityModel.
func fromFacilityDomain(facility *entity.Facility) *model.FacilityModel {
	if facility == nil {
		return nil
	}

	data := &model.FacilityModel{
		ID:        facility.ID,
		Name:      facility.Name,
		Address:   facility.Address,
		Phone:     facility.Phone,
		Category:  string(facility.Category),
		UpdatedAt: facility.UpdatedAt,
	}

	if facility.Location != nil {
		lat, lon := facility.Location.Latitude, facility.Location.Longitude
		data.Lat, data.Lon = &lat, &lon
	}

	for i, cols := range slotColumns(data) {
		hours := facility.Hours.Slot(i + 1)
		if hours == nil {
			continue
		}
		openVal, closeVal := hours.Open, hours.Close
		*cols[0], *cols[1] = &openVal, &closeVal
	}

	return data
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
