// Package main provides a command-line utility that releases a single
// differentially private statistic via the snapping mechanism.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dpkit/snap"
)

func main() {
	x := flag.Float64("x", 0, "non-private estimate to release")
	sensitivity := flag.Float64("sensitivity", 1.0, "sensitivity of the estimate")
	epsilon := flag.Float64("epsilon", 1.0, "privacy parameter epsilon")
	bound := flag.Float64("bound", 100.0, "clamping bound B")
	showNoise := flag.Bool("noise", false, "print the noise added instead of the private release")
	flag.Parse()

	if *sensitivity <= 0 || *epsilon <= 0 || *bound <= 0 {
		log.Fatalf("sensitivity, epsilon, and bound must all be positive")
	}

	if *showNoise {
		noise, err := snap.SnapNoise(*x, *sensitivity, *epsilon, *bound)
		if err != nil {
			log.Fatalf("Failed to compute noise: %v", err)
		}
		fmt.Printf("%v\n", noise)
		return
	}

	released, err := snap.SnapRelease(*x, *sensitivity, *epsilon, *bound)
	if err != nil {
		log.Fatalf("Failed to release: %v", err)
	}
	fmt.Printf("%v\n", released)
}
