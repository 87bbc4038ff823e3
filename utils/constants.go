package utils

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// HallLockPrefix prefixes the per-hall scheduling lock keys.
const HallLockPrefix = "lock:hall:"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// DateLayout is the calendar date format accepted in query strings.
const DateLayout = "2006-01-02"
