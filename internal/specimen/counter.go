package specimen

import "sync/atomic"

// rockCounter holds the last serial number handed out to a rock.
// It starts at 0 when the process starts and is only advanced by nextSerial.
var rockCounter atomic.Int64

func nextSerial() int64 {
	return rockCounter.Add(1)
}
