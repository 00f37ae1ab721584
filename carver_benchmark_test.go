package seamcarve

import (
	"math/rand"
	"testing"
)

func Benchmark_Carver(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	src := randomImage(rnd, 320, 240)

	c, err := NewCarver(320, 240)
	if err != nil {
		b.Fatalf("could not create the carver: %v", err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := c.CarveVertical(src, 310); err != nil {
			b.FailNow()
		}
	}
}

func Benchmark_Energy(b *testing.B) {
	rnd := rand.New(rand.NewSource(2))
	img := randomImage(rnd, 640, 480)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ComputeEnergy(img); err != nil {
			b.FailNow()
		}
	}
}
