package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int
}

// RunHeadless runs the calculator without opening a window. It returns when
// ctx is done, after cfg.Ticks ticks, or on the first step error, and logs
// the number of completed ticks on the way out.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, New().(*hostHAL), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) (err error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)

	var tick uint64
	defer func() {
		if err != nil {
			h.logger.WriteLineString(fmt.Sprintf("headless: stopped after %d ticks: %v", tick, err))
			return
		}
		h.logger.WriteLineString(fmt.Sprintf("headless: stopped after %d ticks", tick))
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if err := runSteps(step, cfg.StepBudget); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// runSteps calls step up to budget times within one tick.
func runSteps(step func() error, budget int) error {
	if step == nil {
		return nil
	}
	for i := 0; i < budget; i++ {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
