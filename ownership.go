package paimon

// OwnsBucket reports whether the assigner with index assignID (out of
// numAssigners total) owns the given bucket id.
//
// The predicate statically partitions the non-negative bucket-id space into
// numAssigners disjoint, collectively exhaustive subsets. Two parallel
// assigners therefore never independently open the same new bucket id, which
// is what lets a fresh overwrite run without any cross-instance
// coordination.
//
// Parameters:
//   - bucket: Candidate bucket id (non-negative)
//   - numAssigners: Total number of parallel assigner instances
//   - assignID: This assigner's 0-based index
//
// Returns:
//   - bool: true if this assigner may open the bucket id
func OwnsBucket(bucket, numAssigners, assignID int) bool {
	return bucket%numAssigners == assignID
}
