package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// problems accumulates every violation so one Validate call reports them all.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) positive(key string, d time.Duration) {
	if d <= 0 {
		p.addf("%s must be positive, got %s", key, d)
	}
}

func (p *problems) atLeast(key string, got, low int) {
	if got < low {
		p.addf("%s must be >= %d, got %d", key, low, got)
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
	}
}

func (p *problems) notBlank(key, got string) {
	if strings.TrimSpace(got) == "" {
		p.addf("%s must not be empty", key)
	}
}

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var p problems

	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	c.Auth.check(&p)
	c.Redis.check(&p)
	c.Realtime.check(&p)

	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout)
	p.positive("server.write_timeout", s.WriteTimeout)
	p.positive("server.request_timeout", s.RequestTimeout)
	p.positive("server.shutdown_timeout", s.ShutdownTimeout)
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) check(p *problems) {
	if u, err := url.Parse(cl.BaseURL); cl.BaseURL == "" || err != nil || u.Host == "" {
		p.addf("client.base_url must be an absolute URL, got %q", cl.BaseURL)
	}
	p.positive("client.timeout", cl.Timeout)

	p.atLeast("client.retry.max_attempts", cl.Retry.MaxAttempts, 1)
	if cl.Retry.Multiplier <= 0 {
		p.addf("client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	}
	p.atLeast("client.circuit_breaker.max_failures", cl.CircuitBreaker.MaxFailures, 1)

	switch rate := cl.RateLimit.RequestsPerSecond; {
	case rate < 0:
		p.addf("client.rate_limit.requests_per_second must not be negative, got %g", rate)
	case rate > 0:
		p.atLeast("client.rate_limit.burst_size", cl.RateLimit.BurstSize, 1)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" {
		p.notBlank("telemetry.endpoint", t.Endpoint)
	}
}

func (a *AuthConfig) check(p *problems) {
	if len(a.Secret) < minAuthSecretLength {
		p.addf("auth.secret must be at least %d bytes", minAuthSecretLength)
	}
	p.notBlank("auth.issuer", a.Issuer)
	p.notBlank("auth.audience", a.Audience)
	if a.Leeway < 0 {
		p.addf("auth.leeway must not be negative, got %s", a.Leeway)
	}
}

func (r *RedisConfig) check(p *problems) {
	p.notBlank("redis.addr", r.Addr)
	if r.DB < 0 {
		p.addf("redis.db must not be negative, got %d", r.DB)
	}
}

func (rt *RealtimeConfig) check(p *problems) {
	p.atLeast("realtime.buffer_size", rt.BufferSize, 1)
	p.positive("realtime.write_timeout", rt.WriteTimeout)
	p.positive("realtime.ping_interval", rt.PingInterval)
}
