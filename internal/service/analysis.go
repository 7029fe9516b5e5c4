// Package service orchestrates the three pipeline stages into one
// analysis run and caches finished reports.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"btc-pulse/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const reportCacheTTL = 5 * time.Minute

// Stage interfaces are declared here, at the consumer.
type Collector interface {
	Collect(ctx context.Context, days int) error
}

type Processor interface {
	Process(ctx context.Context) error
}

type DecisionMaker interface {
	Make(ctx context.Context, days int) (domain.AnalysisResult, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// AnalysisService runs clear→collect→process→decide for the configured
// period. A finished report is cached briefly so repeat requests do not
// hammer rate-limited upstreams.
type AnalysisService struct {
	tracer    trace.Tracer
	collector Collector
	processor Processor
	decision  DecisionMaker
	period    *Period
	redis     RedisClient
}

func NewAnalysisService(
	tracer trace.Tracer,
	collector Collector,
	processor Processor,
	decision DecisionMaker,
	period *Period,
	redisClient RedisClient,
) *AnalysisService {
	return &AnalysisService{
		tracer:    tracer,
		collector: collector,
		processor: processor,
		decision:  decision,
		period:    period,
		redis:     redisClient,
	}
}

// Run executes one full pipeline invocation. On failure the returned error
// is a *domain.StageError naming the failing stage; no partial report is
// ever returned.
func (s *AnalysisService) Run(ctx context.Context) (domain.AnalysisResult, error) {
	ctx, span := s.tracer.Start(ctx, "analysis-service.run")
	defer span.End()

	days := s.period.Days()

	if cached, ok := s.getCachedReport(ctx, days); ok {
		return cached, nil
	}

	log.Printf("starting analysis run over %d days", days)

	if err := s.collector.Collect(ctx, days); err != nil {
		return domain.AnalysisResult{}, &domain.StageError{Stage: domain.StageCollection, Err: err}
	}
	if err := s.processor.Process(ctx); err != nil {
		return domain.AnalysisResult{}, &domain.StageError{Stage: domain.StageProcessing, Err: err}
	}
	result, err := s.decision.Make(ctx, days)
	if err != nil {
		return domain.AnalysisResult{}, &domain.StageError{Stage: domain.StageDecision, Err: err}
	}

	s.setCachedReport(ctx, days, result)
	return result, nil
}

// Period exposes the shared analysis period for boundary code.
func (s *AnalysisService) Period() *Period { return s.period }

func reportCacheKey(days int) string {
	return fmt.Sprintf("report:%d", days)
}

func (s *AnalysisService) getCachedReport(ctx context.Context, days int) (domain.AnalysisResult, bool) {
	if s.redis == nil {
		return domain.AnalysisResult{}, false
	}
	data, err := s.redis.Get(ctx, reportCacheKey(days)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis cache read error: %v", err)
		}
		return domain.AnalysisResult{}, false
	}
	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		log.Printf("corrupt cached report for %d days: %v", days, err)
		return domain.AnalysisResult{}, false
	}
	return result, true
}

func (s *AnalysisService) setCachedReport(ctx context.Context, days int, result domain.AnalysisResult) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, reportCacheKey(days), data, reportCacheTTL).Err(); err != nil {
		log.Printf("redis cache write error: %v", err)
	}
}
