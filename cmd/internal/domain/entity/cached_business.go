package entity

// CachedBusiness is a legal API lookup kept in the local cache.
type CachedBusiness struct {
	Identifier string `gorm:"primaryKey;column:identifier"`

	// Payload is the raw business response, as JSON.
	Payload string

	// Found controls the negative caching strategy for legal API lookups:
	//
	// - true: The identifier is registered and Payload holds its data.
	//
	// - false: The identifier was queried, returned a 404, and is cached as unknown.
	//
	// This prevents repeated API calls for identifiers we already know do not exist.
	Found    bool  `gorm:"not null"`
	CachedAt int64 `gorm:"index;autoUpdateTime:false"`
}
