package metrics

// RecordSubjectCreated increments the subject creation counter.
func RecordSubjectCreated() {
	subjectsCreatedTotal.Inc()
}

// RecordFindingCreated increments the finding creation counter for a type.
func RecordFindingCreated(findingType string) {
	findingsCreatedTotal.WithLabelValues(findingType).Inc()
}

// RecordWatchListRejection increments the cap-rejection counter for a
// watch list ("twitter" or "news").
func RecordWatchListRejection(list string) {
	watchlistRejectionsTotal.WithLabelValues(list).Inc()
}

// RecordSearchBundleGenerated increments the search bundle counter.
func RecordSearchBundleGenerated() {
	searchBundlesTotal.Inc()
}
