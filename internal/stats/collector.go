// Package stats samples process resource usage while a simulation
// runs and renders a short report of it.
package stats

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

type Sample struct {
	Elapsed    time.Duration
	HeapAlloc  uint64
	ProcessRSS uint64
	CPUPercent float64
	Goroutines int
}

type Summary struct {
	TotalElapsed   time.Duration
	PeakHeapAlloc  uint64
	PeakProcessRSS uint64
	PeakCPUPercent float64
	AvgCPUPercent  float64
	SystemCPUCores int
	SampleCount    int
}

// Collector samples runtime and process stats on a fixed interval
// until stopped.
type Collector struct {
	mu      sync.Mutex
	samples []Sample

	startTime time.Time
	interval  time.Duration
	proc      *process.Process

	stopChan chan struct{}
	doneChan chan struct{}
}

func NewCollector(interval time.Duration) (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to get process info: %w", err)
	}

	return &Collector{
		interval: interval,
		proc:     proc,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}, nil
}

func (c *Collector) Start() {
	c.startTime = time.Now()
	go c.collect()
}

func (c *Collector) collect() {
	defer close(c.doneChan)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.sample()

	for {
		select {
		case <-c.stopChan:
			c.sample()
			return
		case <-ticker.C:
			c.sample()
		}
	}
}

func (c *Collector) sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	point := Sample{
		Elapsed:    time.Since(c.startTime),
		HeapAlloc:  memStats.HeapAlloc,
		Goroutines: runtime.NumGoroutine(),
	}

	if memInfo, err := c.proc.MemoryInfo(); err == nil && memInfo != nil {
		point.ProcessRSS = memInfo.RSS
	}
	if cpuPercent, err := c.proc.CPUPercent(); err == nil {
		point.CPUPercent = cpuPercent
	}

	c.mu.Lock()
	c.samples = append(c.samples, point)
	c.mu.Unlock()
}

// Stop ends collection and returns the summary over all samples.
func (c *Collector) Stop() Summary {
	close(c.stopChan)
	<-c.doneChan

	c.mu.Lock()
	defer c.mu.Unlock()

	s := Summary{
		TotalElapsed: time.Since(c.startTime),
		SampleCount:  len(c.samples),
	}
	if cores, err := cpu.Counts(true); err == nil {
		s.SystemCPUCores = cores
	}

	var totalCPU float64
	for _, p := range c.samples {
		s.PeakHeapAlloc = max(s.PeakHeapAlloc, p.HeapAlloc)
		s.PeakProcessRSS = max(s.PeakProcessRSS, p.ProcessRSS)
		s.PeakCPUPercent = max(s.PeakCPUPercent, p.CPUPercent)
		totalCPU += p.CPUPercent
	}
	if len(c.samples) > 0 {
		s.AvgCPUPercent = totalCPU / float64(len(c.samples))
	}
	return s
}

func (s Summary) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"elapsed: %s\nsamples: %d\npeak heap: %s\npeak rss: %s\npeak cpu: %.1f%%\navg cpu: %.1f%% (of %d cores)\n",
		s.TotalElapsed.Round(time.Millisecond),
		s.SampleCount,
		humanize.IBytes(s.PeakHeapAlloc),
		humanize.IBytes(s.PeakProcessRSS),
		s.PeakCPUPercent,
		s.AvgCPUPercent,
		s.SystemCPUCores,
	)
	return err
}
