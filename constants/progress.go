package constants

import "time"

// Progress Constants
const (
	// ExperiencePerLevel is multiplied by the current level to get the next threshold
	ExperiencePerLevel = 100

	// ProgressKey is the fixed identifier of the progress record in the store
	ProgressKey = "portfolioData"

	// StoreTimeout bounds a single load or save against the store
	StoreTimeout = 2 * time.Second
)
