package mockapi

import (
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/emiliopalmerini/genex/internal/domain"
)

const samplesPerGroup = 20

// Generator produces fixture data shaped like the real analysis backend:
// healthy samples ~ N(10, 2), diseased samples ~ N(15, 3).
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	healthy  distuv.Normal
	diseased distuv.Normal
}

// NewGenerator creates a generator with a fixed seed so runs are reproducible.
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Generator{
		rng:      rand.New(src),
		healthy:  distuv.Normal{Mu: 10, Sigma: 2, Src: src},
		diseased: distuv.Normal{Mu: 15, Sigma: 3, Src: src},
	}
}

// Expression draws one expression analysis. Statistics are computed from the
// drawn samples, fold change being diseased mean over healthy mean.
func (g *Generator) Expression() domain.ExpressionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	healthy := make([]float64, samplesPerGroup)
	diseased := make([]float64, samplesPerGroup)
	for i := range healthy {
		healthy[i] = g.healthy.Rand()
	}
	for i := range diseased {
		diseased[i] = g.diseased.Rand()
	}

	healthyMean := stat.Mean(healthy, nil)
	diseasedMean := stat.Mean(diseased, nil)

	return domain.ExpressionResult{
		ExpressionData: domain.ExpressionData{
			Healthy:  healthy,
			Diseased: diseased,
		},
		Statistics: domain.Statistics{
			HealthyMean:  healthyMean,
			DiseasedMean: diseasedMean,
			FoldChange:   diseasedMean / healthyMean,
		},
	}
}

// Prediction draws a coin-flip classification with a confidence rounded to
// two decimals.
func (g *Generator) Prediction() domain.PredictionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	status := domain.StatusDiseased
	if g.rng.Float64() > 0.5 {
		status = domain.StatusHealthy
	}

	return domain.PredictionResult{
		Prediction: status,
		Confidence: math.Round(g.rng.Float64()*100*100) / 100,
	}
}
