package repository

import (
	"fmt"
	"sort"
	"time"

	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalSearchCriteria is the fully resolved set of search filters. Zip codes
// are looked up before the query runs so an unknown zip fails fast.
type AnimalSearchCriteria struct {
	AnimalType models.AnimalType

	// Origin is the geocoded center point of the search; nil disables
	// distance annotation, radius filtering and distance sorting.
	Origin      *models.ZipCode
	RadiusMiles *int

	Age  *models.AnimalAge
	Sex  *models.AnimalSex
	Size *models.AnimalSize

	BreedSlug string
	AwgID     *uuid.UUID

	EuthDateWithinDays *int

	GoodWithCats bool
	GoodWithDogs bool
	GoodWithKids bool
	Purebred     bool

	// ShortlistedBy restricts results to the given user's shortlist.
	// It is ignored when nil, so anonymous requests silently skip it.
	ShortlistedBy *uuid.UUID

	// PublishedSince keeps only animals whose first publication happened
	// strictly after the given instant. Used by saved-search digests.
	PublishedSince *time.Time

	IncludeUnpublishedAnimals bool
	IncludeUnpublishedAwgs    bool

	Sort   string
	Limit  int
	Offset int

	// Now anchors relative date windows; the zero value means time.Now().
	Now time.Time
}

// AnimalSearchResult pairs an animal with its distance from the search
// origin. Distance is nil when the search had no origin.
type AnimalSearchResult struct {
	Animal         models.Animal
	DistanceMeters *float64
}

// AnimalSearchPage is one page of search results with the total match count.
type AnimalSearchPage struct {
	Results []AnimalSearchResult
	Total   int64
}

const (
	SortDistance      = "distance"
	SortNewest        = "-created_at"
	SortOldest        = "created_at"
	SortEuthDate      = "euth_date"
	SortName          = "name"
	SortLongestWaited = "first_published_at"
)

// haversineSQL computes great-circle distance in meters between the awg's
// coordinates and a fixed point. Placeholders: lat, lat, lng.
const haversineSQL = `2 * 6371000 * asin(sqrt(` +
	`power(sin(radians((awgs.latitude - ?) / 2)), 2) + ` +
	`cos(radians(?)) * cos(radians(awgs.latitude)) * ` +
	`power(sin(radians((awgs.longitude - ?) / 2)), 2)))`

// Search runs the animal browse query and returns one page of results.
// Visibility filters apply before everything else so unpublished animals
// never leak through other criteria.
func (r *AnimalRepository) Search(c AnimalSearchCriteria) (*AnimalSearchPage, error) {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}

	q := r.db.Model(&models.Animal{}).
		Joins("JOIN awgs ON awgs.id = animals.awg_id")

	if !c.IncludeUnpublishedAnimals {
		q = q.Where("animals.is_published = ?", true)
	}
	if !c.IncludeUnpublishedAwgs {
		q = q.Where("awgs.status = ?", models.AwgStatusPublished)
	}

	q = q.Where("animals.animal_type = ?", c.AnimalType)

	if c.Origin != nil && c.RadiusMiles != nil {
		radiusMeters := float64(*c.RadiusMiles) * models.MetersPerMile
		q = q.Where(haversineSQL+" <= ?",
			c.Origin.Latitude, c.Origin.Latitude, c.Origin.Longitude, radiusMeters)
	}

	if c.Age != nil {
		q = q.Where("animals.age = ?", *c.Age)
	}
	if c.Sex != nil {
		q = q.Where("animals.sex = ?", *c.Sex)
	}
	if c.Size != nil {
		q = q.Where("animals.size = ?", *c.Size)
	}

	if c.BreedSlug != "" {
		breedIDs := r.db.Model(&models.Breed{}).Select("id").Where("slug = ?", c.BreedSlug)
		q = q.Where("(animals.primary_breed_id IN (?) OR animals.secondary_breed_id IN (?))",
			breedIDs, breedIDs)
	}

	if c.AwgID != nil {
		q = q.Where("animals.awg_id = ?", *c.AwgID)
	}

	if c.EuthDateWithinDays != nil {
		// The window ends at the last second of the Nth day from now, so
		// a zero-day window still matches animals listed for today.
		end := now.AddDate(0, 0, *c.EuthDateWithinDays)
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
		q = q.Where("animals.euth_date IS NOT NULL AND animals.euth_date <= ?", end)
	}

	if c.GoodWithCats {
		q = q.Where("animals.behaviour_cats = ?", models.BehaviourGood)
	}
	if c.GoodWithDogs {
		q = q.Where("animals.behaviour_dogs = ?", models.BehaviourGood)
	}
	if c.GoodWithKids {
		q = q.Where("animals.behaviour_kids = ?", models.BehaviourGood)
	}
	if c.Purebred {
		q = q.Where("animals.is_mixed_breed = ?", false)
	}

	if c.ShortlistedBy != nil {
		shortlisted := r.db.Model(&models.AnimalShortList{}).
			Select("animal_id").Where("user_id = ?", *c.ShortlistedBy)
		q = q.Where("animals.id IN (?)", shortlisted)
	}

	if c.PublishedSince != nil {
		q = q.Where("animals.first_published_at > ?", *c.PublishedSince)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	type idRow struct {
		ID             uuid.UUID
		DistanceMeters *float64
	}

	selectCols := "animals.id"
	var selectArgs []interface{}
	if c.Origin != nil {
		selectCols = "animals.id, " + haversineSQL + " AS distance_meters"
		selectArgs = []interface{}{c.Origin.Latitude, c.Origin.Latitude, c.Origin.Longitude}
	}

	order, err := orderClause(c.Sort, c.Origin != nil)
	if err != nil {
		return nil, err
	}

	var rows []idRow
	err = q.Select(selectCols, selectArgs...).
		Order(order).
		Limit(c.Limit).
		Offset(c.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	page := &AnimalSearchPage{Total: total, Results: make([]AnimalSearchResult, 0, len(rows))}
	if len(rows) == 0 {
		return page, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	animals, err := r.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Animal, len(animals))
	for _, a := range animals {
		byID[a.ID] = a
	}
	for _, row := range rows {
		a, ok := byID[row.ID]
		if !ok {
			continue
		}
		page.Results = append(page.Results, AnimalSearchResult{
			Animal:         a,
			DistanceMeters: row.DistanceMeters,
		})
	}
	return page, nil
}

// orderClause maps an external sort key to a SQL ORDER BY. Distance sorting
// silently degrades to newest-first when no origin is available, and every
// ordering ends with the id column so pages stay stable.
func orderClause(key string, hasOrigin bool) (string, error) {
	if key == "" || (key == SortDistance && !hasOrigin) {
		key = SortNewest
	}
	var col string
	switch key {
	case SortDistance:
		col = "distance_meters ASC"
	case SortNewest:
		col = "animals.created_at DESC"
	case SortOldest:
		col = "animals.created_at ASC"
	case SortEuthDate:
		col = "animals.euth_date ASC NULLS LAST"
	case SortName:
		col = "animals.name ASC"
	case SortLongestWaited:
		col = "animals.first_published_at ASC NULLS LAST"
	default:
		return "", fmt.Errorf("unsupported sort key %q", key)
	}
	return col + ", animals.id ASC", nil
}

// ListDistinctBreedSlugs returns the breed slugs that currently appear on
// at least one visible animal of the given type, sorted alphabetically.
func (r *AnimalRepository) ListDistinctBreedSlugs(animalType models.AnimalType) ([]string, error) {
	var primary, secondary []string
	base := func() *gorm.DB {
		return r.db.Model(&models.Animal{}).
			Joins("JOIN awgs ON awgs.id = animals.awg_id").
			Where("animals.is_published = ?", true).
			Where("awgs.status = ?", models.AwgStatusPublished).
			Where("animals.animal_type = ?", animalType)
	}
	err := base().
		Joins("JOIN breeds ON breeds.id = animals.primary_breed_id").
		Distinct("breeds.slug").
		Pluck("breeds.slug", &primary).Error
	if err != nil {
		return nil, err
	}
	err = base().
		Joins("JOIN breeds ON breeds.id = animals.secondary_breed_id").
		Distinct("breeds.slug").
		Pluck("breeds.slug", &secondary).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	var slugs []string
	for _, s := range append(primary, secondary...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs, nil
}
