package monitor

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ReadFunc returns CPU and memory usage in percent.
type ReadFunc func() (cpuPct, memPct float64, err error)

// Sampler keeps the latest system load for the optional status line.
// Start samples in the background; Stats and Line are safe from the render loop.
type Sampler struct {
	interval time.Duration
	read     ReadFunc

	mu      sync.RWMutex
	cpu     float64
	mem     float64
	sampled bool
}

// NewSampler reads the real system through gopsutil.
func NewSampler(interval time.Duration) *Sampler {
	return NewSamplerWith(interval, ReadSystem)
}

// NewSamplerWith lets tests supply their own reader.
func NewSamplerWith(interval time.Duration, read ReadFunc) *Sampler {
	return &Sampler{interval: interval, read: read}
}

// Start samples once right away and then every interval until ctx is done.
func (s *Sampler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			s.Sample()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Sample takes one reading. Failed readings keep the previous values.
func (s *Sampler) Sample() {
	c, m, err := s.read()
	if err != nil {
		log.Debug().Err(err).Msg("system stats unavailable")
		return
	}

	s.mu.Lock()
	// one decimal is enough on screen
	s.cpu = math.Round(c*10) / 10
	s.mem = math.Round(m*10) / 10
	s.sampled = true
	s.mu.Unlock()
}

// Stats returns the last CPU and memory percentages.
func (s *Sampler) Stats() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cpu, s.mem
}

// Line is what the overlay draws; empty until the first successful sample.
func (s *Sampler) Line() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.sampled {
		return ""
	}
	return fmt.Sprintf("CPU %.1f%%  MEM %.1f%%", s.cpu, s.mem)
}

// ReadSystem asks gopsutil for the averaged CPU load since the previous
// call (0 interval, so it never blocks) and virtual memory usage.
func ReadSystem() (float64, float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	c, err := cpu.Percent(0, false)
	if err != nil {
		return 0, 0, err
	}
	if len(c) == 0 {
		return 0, v.UsedPercent, nil
	}
	return c[0], v.UsedPercent, nil
}
