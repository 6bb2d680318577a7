// Package testing provides test utilities for the bucket-assignment library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger writing through testing.T
//   - Key: concise PartitionKey construction from Go scalars
//
// Example usage:
//
//	import paimontest "github.com/gavin9402/paimon/testing"
//
//	func TestMyWriter(t *testing.T) {
//	    assigner, _ := paimon.NewAssigner(&cfg, paimon.WithLogger(paimontest.NewTestLogger(t)))
//	    bucket, _ := assigner.Assign(paimontest.Key("us-east", int32(20260825)), h)
//	    // ...
//	}
package testing
