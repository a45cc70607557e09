package utils

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"truleadai/models"
)

// Generator produces synthetic lead batches. The random source is injected
// so a fixed seed yields a fully reproducible batch. rand.Rand is not safe
// for concurrent use and one generator serves every request, so draws are
// serialized behind the mutex.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a generator around the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator is a convenience for tests and deterministic runs.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// GenerateBatch returns exactly size leads honoring the optional filter
// constraints, sorted by relevance score descending. Ties keep generation
// order (stable sort), so equal-score leads are reproducible too.
func (g *Generator) GenerateBatch(size int, filters models.FilterCriteria) []models.Lead {
	g.mu.Lock()
	defer g.mu.Unlock()

	leads := make([]models.Lead, 0, size)
	for i := 0; i < size; i++ {
		leads = append(leads, g.generateLead(filters))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].RelevanceScore > leads[j].RelevanceScore
	})
	return leads
}

func (g *Generator) generateLead(filters models.FilterCriteria) models.Lead {
	industry := filters.Industry
	if industry == "" {
		industry = models.Industries[g.rng.Intn(len(models.Industries))]
	}

	country := filters.Country
	if country == "" {
		country = models.Countries[g.rng.Intn(len(models.Countries))]
	}

	// A country outside the city table falls back to a sentinel city
	// instead of failing the batch.
	city := models.UnknownCity
	if cities := models.Cities[country]; len(cities) > 0 {
		city = cities[g.rng.Intn(len(cities))]
	}

	company := models.CompanyNames[g.rng.Intn(len(models.CompanyNames))]
	domain := contactDomain(company)

	return models.Lead{
		ID:       uuid.NewString(),
		Company:  company,
		Industry: industry,
		Location: models.Location{
			City:    city,
			Country: country,
		},
		Website:       "https://" + domain,
		Email:         "contact@" + domain,
		Phone:         g.phone(),
		EmployeeCount: models.EmployeeCounts[g.rng.Intn(len(models.EmployeeCounts))],
		Founded:       models.FoundedMin + g.rng.Intn(models.FoundedMax-models.FoundedMin+1),
		Revenue:       models.Revenues[g.rng.Intn(len(models.Revenues))],
		Description: fmt.Sprintf(
			"A leading %s company based in %s, %s. Specializing in innovative solutions and cutting-edge technology to drive business growth.",
			strings.ToLower(industry), city, country,
		),
		Status:         models.StatusNew,
		RelevanceScore: models.RelevanceMin + g.rng.Intn(models.RelevanceMax-models.RelevanceMin+1),
		Notes:          "",
	}
}

// contactDomain derives the synthetic web domain from the company name:
// lower-cased, all non-alphanumerics stripped, suffixed ".com".
func contactDomain(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String() + ".com"
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+1-%d-%d-%d",
		g.rng.Intn(900)+100,
		g.rng.Intn(900)+100,
		g.rng.Intn(9000)+1000,
	)
}
