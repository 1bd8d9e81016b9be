package service

// ReviewMetrics records review workflow outcomes.
type ReviewMetrics interface {
	// ObserveReviewMutation counts one add, update or delete; err is nil on success.
	ObserveReviewMutation(operation string, err error)
}
