package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 3,
	})

	client := "10.0.0.1"

	for i := 0; i < 3; i++ {
		if !limiter.Allow(client) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if limiter.Allow(client) {
		t.Error("Fourth request should be blocked due to rate limit")
	}
}

func TestLimiter_DifferentClients(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 1,
	})

	client1 := "10.0.0.1"
	client2 := "10.0.0.2"

	if !limiter.Allow(client1) {
		t.Error("Client1 first request should be allowed")
	}

	if !limiter.Allow(client2) {
		t.Error("Client2 first request should be allowed")
	}

	if limiter.Allow(client1) {
		t.Error("Client1 second request should be blocked")
	}

	if limiter.Allow(client2) {
		t.Error("Client2 second request should be blocked")
	}
}

func TestLimiter_RemainingRequests(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 5,
	})

	client := "10.0.0.1"

	if remaining := limiter.RemainingRequests(client); remaining != 5 {
		t.Errorf("RemainingRequests() = %d, want 5", remaining)
	}

	limiter.Allow(client)
	limiter.Allow(client)
	limiter.Allow(client)

	if remaining := limiter.RemainingRequests(client); remaining != 2 {
		t.Errorf("RemainingRequests() = %d, want 2", remaining)
	}

	limiter.Allow(client)
	limiter.Allow(client)

	if remaining := limiter.RemainingRequests(client); remaining != 0 {
		t.Errorf("RemainingRequests() = %d, want 0", remaining)
	}
}

func TestLimiter_ResetTime(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 1,
	})

	client := "10.0.0.1"

	before := time.Now()
	limiter.Allow(client)

	resetTime := limiter.ResetTime(client)

	expectedReset := before.Add(time.Minute)
	tolerance := 2 * time.Second

	if resetTime.Before(expectedReset.Add(-tolerance)) || resetTime.After(expectedReset.Add(tolerance)) {
		t.Errorf("ResetTime() = %v, expected around %v", resetTime, expectedReset)
	}
}

func TestLimiter_DefaultConfig(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 0,
	})

	client := "10.0.0.1"

	for i := 0; i < 10; i++ {
		if !limiter.Allow(client) {
			t.Errorf("Request %d should be allowed with default config", i+1)
		}
	}

	// 11th should be blocked
	if limiter.Allow(client) {
		t.Error("11th request should be blocked")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := New(Config{
		RequestsPerMinute: 100,
	})

	done := make(chan bool)
	client := "10.0.0.1"

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 20; j++ {
				limiter.Allow(client)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	remaining := limiter.RemainingRequests(client)
	if remaining != 0 {
		t.Errorf("RemainingRequests() = %d, want 0 after concurrent access", remaining)
	}
}
