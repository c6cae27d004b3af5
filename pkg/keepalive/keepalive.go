// Package keepalive periodically calls the configured URLs so that idle free-tier
// deployments of the companion services are not put to sleep.
package keepalive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"maverik-copilot-be/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
)

const DefaultSchedule = "@every 8m"

type Result struct {
	URL        string
	StatusCode int
	Err        error
}

func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode == http.StatusOK
}

type Pinger struct {
	client *resty.Client
	urls   []string
	log    logger.ILogger
	cron   *cron.Cron
}

func NewPinger(urls []string, timeout time.Duration, log logger.ILogger) *Pinger {
	return &Pinger{
		client: resty.New().SetTimeout(timeout),
		urls:   urls,
		log:    log,
		cron:   cron.New(),
	}
}

// PingAll calls every URL once, in order. A failing URL does not stop the others.
func (p *Pinger) PingAll(ctx context.Context) []Result {
	results := make([]Result, 0, len(p.urls))
	for _, url := range p.urls {
		res := Result{URL: url}
		resp, err := p.client.R().SetContext(ctx).Get(url)
		if err != nil {
			res.Err = err
			p.log.Warn(logger.App, fmt.Sprintf("Keepalive call to %s failed", url), map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
			results = append(results, res)
			continue
		}

		res.StatusCode = resp.StatusCode()
		if res.OK() {
			p.log.Info(logger.App, fmt.Sprintf("Keepalive call to %s succeeded", url), map[string]interface{}{
				"url":         url,
				"status_code": res.StatusCode,
				"duration_ms": resp.Time().Milliseconds(),
			})
		} else {
			p.log.Info(logger.App, fmt.Sprintf("Keepalive call to %s returned status %d", url, res.StatusCode), map[string]interface{}{
				"url":         url,
				"status_code": res.StatusCode,
			})
		}
		results = append(results, res)
	}
	return results
}

// Start schedules PingAll. It is a no-op when no URLs are configured.
func (p *Pinger) Start(schedule string) error {
	if len(p.urls) == 0 {
		return nil
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := p.cron.AddFunc(schedule, func() {
		p.PingAll(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid keepalive schedule %q: %w", schedule, err)
	}
	p.cron.Start()

	p.log.Info(logger.App, "Keepalive scheduler started", map[string]interface{}{
		"schedule": schedule,
		"urls":     p.urls,
	})
	return nil
}

// Stop halts the scheduler and waits for a running ping to finish.
func (p *Pinger) Stop() {
	<-p.cron.Stop().Done()
}
