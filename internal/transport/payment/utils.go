package payment

import (
	"math/rand/v2"
	"time"
)

// spread растягивает паузу d на случайную долю в пределах [0, maxShare], чтобы воркеры, получившие 429
// одновременно, не вернулись к шлюзу в один момент. Отрицательный maxShare считается нулем.
func spread(d time.Duration, maxShare float64) time.Duration {
	if maxShare <= 0 || d <= 0 {
		return d
	}
	return d + time.Duration(rand.Float64()*maxShare*float64(d)) //nolint:gosec
}
