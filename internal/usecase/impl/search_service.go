package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"onduty/config"
	deliverycontext "onduty/internal/delivery/context"
	"onduty/internal/domain/entity"
	domainerrors "onduty/internal/domain/errors"
	"onduty/internal/domain/geo"
	"onduty/internal/domain/openhours"
	"onduty/internal/domain/repository"
	"onduty/internal/domain/service"
	"onduty/internal/usecase"
	"onduty/internal/util"

	"github.com/pkg/errors"
)

// searchService combines the geo index, the open-status engine, and the
// result composer behind the SearchUsecase interface.
type searchService struct {
	facilityRepo repository.FacilityRepository
	sources      map[entity.Category]service.FacilitySource
	calendar     service.HolidayCalendar
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// NewSearchService creates a new search service instance.
func NewSearchService(
	facilityRepo repository.FacilityRepository,
	sources []service.FacilitySource,
	calendar service.HolidayCalendar,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	byCategory := make(map[entity.Category]service.FacilitySource, len(sources))
	for _, src := range sources {
		byCategory[src.Category()] = src
	}

	return &searchService{
		facilityRepo: facilityRepo,
		sources:      byCategory,
		calendar:     calendar,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// located pairs a candidate record with its exact distance during the nearby
// pipeline, before open status is attached.
type located struct {
	facility   *entity.Facility
	distanceKm float64
}

// SearchNearby runs the bounding-box pre-filter against the store, re-checks
// every candidate with the exact haversine distance, sorts ascending, and
// composes the capped result list. A store failure degrades to an empty
// result: nearby search goes dark rather than taking the caller down, and the
// warning log is the paper trail for that tradeoff.
func (s *searchService) SearchNearby(ctx context.Context, input usecase.NearbyInput) ([]*usecase.FacilityStatus, error) {
	if !input.Category.Valid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = s.config.Search.DefaultRadiusKm
	}
	if radius > s.config.Search.MaxRadiusKm {
		radius = s.config.Search.MaxRadiusKm
	}

	limit := input.Limit
	if limit <= 0 || limit > s.config.Search.NearbyLimit {
		limit = s.config.Search.NearbyLimit
	}

	origin := geo.Point(input.Latitude, input.Longitude)
	bound := geo.BoundAround(origin, radius)

	candidates, err := s.facilityRepo.FindWithinBound(ctx, input.Category, bound)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, slog.LevelWarn, "nearby search degraded to empty result",
			slog.String("category", string(input.Category)),
			slog.Float64("radius_km", radius),
			slog.Any("error", err),
		)

		return []*usecase.FacilityStatus{}, nil
	}

	// The box over-includes near its corners; the circle test is the
	// authority on membership. Records without coordinates are a normal
	// data-quality condition and are skipped, never an error.
	within := make([]located, 0, len(candidates))
	for _, f := range candidates {
		if !f.HasLocation() {
			continue
		}
		d := geo.DistanceKm(origin, geo.Point(f.Location.Latitude, f.Location.Longitude))
		if d > radius {
			continue
		}
		within = append(within, located{facility: f, distanceKm: d})
	}

	// Stable: exact ties keep insertion order.
	sort.SliceStable(within, func(i, j int) bool {
		return within[i].distanceKm < within[j].distanceKm
	})
	if len(within) > limit {
		within = within[:limit]
	}

	at := s.now()
	results := make([]*usecase.FacilityStatus, 0, len(within))
	for _, cand := range within {
		status := openhours.Status(cand.facility, at, s.calendar)
		if input.OpenOnly && !status.IsOpen {
			continue
		}
		d := cand.distanceKm
		results = append(results, &usecase.FacilityStatus{
			Facility:   cand.facility,
			Status:     status,
			DistanceKm: &d,
			Distance:   util.FormatDistanceKm(d),
		})
	}

	return composeByDistance(results), nil
}

// SearchRegion fetches one administrative division live from the registry and
// composes an open-first list. Registry failures surface as an empty result,
// never as records falsely reported closed.
func (s *searchService) SearchRegion(ctx context.Context, input usecase.RegionInput) ([]*usecase.FacilityStatus, error) {
	if !input.Category.Valid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	source, ok := s.sources[input.Category]
	if !ok {
		return nil, errors.Errorf("no registry source for category %q", input.Category)
	}

	facilities, err := source.FetchRegion(ctx, input.City, input.District)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, slog.LevelWarn, "region search degraded to empty result",
			slog.String("city", input.City),
			slog.String("district", input.District),
			slog.String("category", string(input.Category)),
			slog.Any("error", err),
		)

		return []*usecase.FacilityStatus{}, nil
	}

	at := s.now()
	results := make([]*usecase.FacilityStatus, 0, len(facilities))
	for _, f := range facilities {
		status := openhours.Status(f, at, s.calendar)
		if input.OpenOnly && !status.IsOpen {
			continue
		}
		results = append(results, &usecase.FacilityStatus{Facility: f, Status: status})
	}

	return composeOpenFirst(results), nil
}

// GetFacility returns one stored record with its current status and the
// formatted weekly overview for the detail view.
func (s *searchService) GetFacility(ctx context.Context, id string) (*usecase.FacilityStatus, []string, error) {
	facility, err := s.facilityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFacilityNotFound) {
			return nil, nil, domainerrors.ErrFacilityNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to load facility")
	}

	status := openhours.Status(facility, s.now(), s.calendar)

	return &usecase.FacilityStatus{Facility: facility, Status: status},
		openhours.WeekOverview(facility), nil
}

// composeOpenFirst sorts open facilities before closed ones with no secondary
// key (stable, so registry order survives within each group) and caps the
// list.
func composeOpenFirst(results []*usecase.FacilityStatus) []*usecase.FacilityStatus {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Status.IsOpen && !results[j].Status.IsOpen
	})

	return capResults(results)
}

// composeByDistance sorts open facilities first, then by ascending distance;
// a missing distance sorts last.
func composeByDistance(results []*usecase.FacilityStatus) []*usecase.FacilityStatus {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Status.IsOpen != results[j].Status.IsOpen {
			return results[i].Status.IsOpen
		}

		return distanceOrInf(results[i]) < distanceOrInf(results[j])
	})

	return capResults(results)
}

func distanceOrInf(r *usecase.FacilityStatus) float64 {
	if r.DistanceKm == nil {
		return math.Inf(1)
	}

	return *r.DistanceKm
}

func capResults(results []*usecase.FacilityStatus) []*usecase.FacilityStatus {
	if len(results) > usecase.MaxComposedResults {
		return results[:usecase.MaxComposedResults]
	}

	return results
}
