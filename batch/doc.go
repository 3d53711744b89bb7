/*
Package batch evaluates many fuzzy arithmetic operations concurrently.

A Runner owns a bounded pool of workers. Jobs are independent of each other,
as all fuzzy operations are pure functions of their arguments, so jobs are
distributed without any locking. Results are returned in job order.

Clients interested in results as soon as they are available may subscribe
to a runner. Every finished Result is broadcast to all subscribers.

	runner := batch.NewRunner(fuzzy.DefaultConfig(), batch.WithWorkers(4))
	defer runner.Close()
	results, err := runner.Run(ctx, jobs)

Runners may record Prometheus metrics about the operations they perform,
see NewMetrics.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package batch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fuzzy'
func tracer() tracing.Trace {
	return tracing.Select("fuzzy")
}
