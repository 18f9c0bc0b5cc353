package model

// Package model contains the recruiting domain records. Each type maps to one
// document collection; the collection name is the lowercased entity name.

const (
	CollectionJob            = "job"
	CollectionCandidate      = "candidate"
	CollectionInterview      = "interview"
	CollectionFeedback       = "feedback"
	CollectionOffer          = "offer"
	CollectionOnboardingTask = "onboardingtask"
	CollectionMessage        = "message"
)

// Collections returns the full set of collection names, in pipeline order.
func Collections() []string {
	return []string{
		CollectionJob,
		CollectionCandidate,
		CollectionInterview,
		CollectionFeedback,
		CollectionOffer,
		CollectionOnboardingTask,
		CollectionMessage,
	}
}
