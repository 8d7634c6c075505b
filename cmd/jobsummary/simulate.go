package main

import (
	"context"
	"log"
	"time"

	"github.com/fentz26/jobsummary/internal/sample"
	"github.com/fentz26/jobsummary/internal/store"
)

// simulate drifts every stored job's counts each interval until ctx ends.
func simulate(ctx context.Context, s *store.Store, interval time.Duration) {
	gen := sample.NewGenerator(time.Now().UnixNano())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Println("Simulation started")
	for {
		select {
		case <-ctx.Done():
			log.Println("Simulation stopped")
			return
		case <-ticker.C:
			workloads, err := s.ListWorkloads("")
			if err != nil {
				log.Printf("Error listing jobs: %v", err)
				continue
			}
			for i := range workloads {
				gen.Drift(&workloads[i])
				if err := s.UpsertWorkload(&workloads[i]); err != nil {
					log.Printf("Error updating job %s: %v", workloads[i].ID, err)
				}
			}
		}
	}
}
