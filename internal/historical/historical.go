// Package historical simulates a daily temperature and humidity history.
package historical

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/katiamach/weather-dashboard-api/internal/model"
)

// Days is the length of every simulated history.
const Days = 30

const (
	seasonalAmplitude = 5.0
	temperatureNoise  = 2.0
	humidityMean      = 70.0
	humidityStdDev    = 10.0
)

// Simulator generates historical series. It is safe for concurrent use.
type Simulator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// New creates a Simulator seeded from the current time.
func New() *Simulator {
	return NewWithSeed(uint64(time.Now().UnixNano()), time.Now)
}

// NewWithSeed creates a deterministic Simulator using the given clock.
func NewWithSeed(seed uint64, now func() time.Time) *Simulator {
	return &Simulator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x94d049bb133111eb)),
		now: now,
	}
}

// Simulate returns Days records from Days days ago up to yesterday.
// Temperatures follow one sine period over the series around a random base,
// with gaussian noise. Humidity is gaussian and is not clamped to [0, 100].
func (s *Simulator) Simulate() []model.HistoricalRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	base := 15 + 10*s.rnd.Float64()

	records := make([]model.HistoricalRecord, 0, Days)
	for k := 0; k < Days; k++ {
		seasonal := seasonalAmplitude * math.Sin(2*math.Pi*float64(k)/Days)
		records = append(records, model.HistoricalRecord{
			Date:        now.AddDate(0, 0, k-Days).Format(model.DateLayout),
			Temperature: base + seasonal + s.rnd.NormFloat64()*temperatureNoise,
			Humidity:    humidityMean + s.rnd.NormFloat64()*humidityStdDev,
		})
	}

	return records
}
