package api

import (
	"testing"
	"time"
)

func TestUserLimitersThrottlesSecondRequest(t *testing.T) {
	ul := newUserLimiters(1, 1)

	if !ul.allow("user-a") {
		t.Fatal("first request should be allowed")
	}
	if ul.allow("user-a") {
		t.Error("second immediate request should be rate limited")
	}
}

func TestUserLimitersEntrySurvivesInsertion(t *testing.T) {
	ul := newUserLimiters(1, 1)
	ul.allow("user-a")

	ul.mu.Lock()
	_, ok := ul.limiters["user-a"]
	ul.mu.Unlock()
	if !ok {
		t.Fatal("fresh entry was evicted on its own insertion")
	}
}

func TestUserLimitersIsolatesUsers(t *testing.T) {
	ul := newUserLimiters(1, 1)

	ul.allow("user-a")
	if !ul.allow("user-b") {
		t.Error("one user's burst should not throttle another")
	}
}

func TestUserLimitersEvictsIdleEntries(t *testing.T) {
	ul := newUserLimiters(1, 1)
	ul.allow("user-idle")

	ul.mu.Lock()
	ul.limiters["user-idle"].lastSeen = time.Now().Add(-limiterIdleEviction - time.Minute)
	ul.mu.Unlock()

	// Inserting a new user triggers the eviction sweep.
	ul.allow("user-b")

	ul.mu.Lock()
	_, idle := ul.limiters["user-idle"]
	_, fresh := ul.limiters["user-b"]
	ul.mu.Unlock()
	if idle {
		t.Error("idle entry should have been evicted")
	}
	if !fresh {
		t.Error("new entry should remain after the sweep")
	}
}
