package service

import "sync"

const DefaultPeriodDays = 7

// Period is the analysis period shared across one session: the request
// handler sets it before each run and the pipeline echoes it into the
// report. Boundary code validates the value; the pipeline trusts it.
type Period struct {
	mu   sync.Mutex
	days int
}

func NewPeriod() *Period {
	return &Period{days: DefaultPeriodDays}
}

func (p *Period) Set(days int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.days = days
}

func (p *Period) Days() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.days
}
