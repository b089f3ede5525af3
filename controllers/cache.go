package controllers

// Cache-Control values by resource volatility. Public aggregate reads trade
// a short staleness window for load; media is immutable once created; admin
// responses are never cached.
const (
	cachePublicRead = "public, s-maxage=60, stale-while-revalidate=300"
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheNone       = "no-store"
)
