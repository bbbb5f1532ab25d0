package scheduler

import (
	"context"
	"log"
	"time"

	"servdash/internal/application"
)

// Pass is one scan of due events.
type Pass interface {
	RunPass(ctx context.Context) application.PassResult
}

// Runner drives a Pass on a fixed interval until its context ends.
type Runner struct {
	pass     Pass
	interval time.Duration
}

func NewRunner(pass Pass, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Runner{pass: pass, interval: interval}
}

// Run blocks, running one pass per tick. Passes never overlap: a slow pass
// delays the next tick instead of stacking. It returns nil once ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	log.Printf("✅ Rappels: vérification toutes les %s", r.interval)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("🛑 Rappels: arrêt du planificateur")
			return nil
		case <-ticker.C:
			res := r.pass.RunPass(ctx)
			if res.Due > 0 {
				log.Printf("🛎 Rappels: %d dû(s), %d envoyé(s), %d échec(s)", res.Due, res.Dispatched, res.Failed)
			}
		}
	}
}
