package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 20
	// MaxLimit caps page size for history listings.
	MaxLimit = 100
)
