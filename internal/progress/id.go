package progress

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// idSeq makes ids unique within a process even if two results are
// recorded in the same millisecond.
var idSeq atomic.Int64

// newResultID returns a collision-resistant result id: a timestamp, a
// process-local sequence number, and a random suffix. Uniqueness is a
// convenience property, not a security one.
func newResultID(nowMillis int64) string {
	return fmt.Sprintf("quiz-%d-%d-%s", nowMillis, idSeq.Add(1), uuid.NewString()[:8])
}
