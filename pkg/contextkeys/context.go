package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB (pool or transaction) for the
	// current request. Set by middleware.DBMiddleware, read by handlers.
	DBContextKey ContextKey = "db"
)
