package math

import (
	"time"

	"golang.org/x/exp/rand"
)

var randSeeded bool = false

func seed() {
	if !randSeeded {
		rand.Seed(uint64(time.Now().UnixNano()))
		randSeeded = true
	}
}

// RandRange returns a random integer in [min, max].
func RandRange(min, max int32) int32 {
	seed()
	return min + rand.Int31n(max-min+1)
}

// RandFloatRange returns a random float in [min, max).
func RandFloatRange(min, max float32) float32 {
	seed()
	return min + rand.Float32()*(max-min)
}
