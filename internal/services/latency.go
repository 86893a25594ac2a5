package services

import "time"

// Delay models the artificial latency the services run before resolving, a
// UX-testing affordance that mirrors a network round trip. It is injected so
// tests pay nothing for it.
type Delay func()

// NoDelay resolves immediately. Use it in tests.
func NoDelay() {}

// FixedDelay returns a Delay that sleeps for d.
func FixedDelay(d time.Duration) Delay {
	return func() {
		time.Sleep(d)
	}
}
