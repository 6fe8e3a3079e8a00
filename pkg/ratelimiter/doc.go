// Package ratelimiter throttles requests per key with an in-memory token
// bucket. Buckets start full with Capacity tokens and regain RefillRate
// tokens every RefillInterval.
//
//	lim, err := ratelimiter.New(cfg)
//	go lim.Run(ctx, time.Minute)
//	r.With(ratelimiter.Middleware(lim, clientip.FromRequest)).Post("/validate", h)
package ratelimiter
