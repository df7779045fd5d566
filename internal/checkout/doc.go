// Package checkout implements checkout step sequencing and navigation.
//
// A checkout is a pipeline of named steps (address → delivery → payment →
// summary → process) whose order comes from flow configuration. Some shops
// collapse a prefix of that pipeline into a single "one-page" view; the
// collapsed steps disappear from the navigable sequence and are represented
// by a single substitute step.
//
// # Sequencing
//
// [Resolve] takes a [Flow] and a [Request] and deterministically computes
// the navigable step order, the active step, the steps rendered before and
// after it, and the back/next navigation targets. It is a pure function:
// no I/O, no shared state, O(number of steps), safe to call concurrently
// from independent renders.
//
// # Usage
//
//	res, err := checkout.Resolve(checkout.Flow{
//	    Steps:       []checkout.Step{"address", "delivery", "payment", "summary", "process"},
//	    DefaultStep: "address",
//	}, checkout.Request{Requested: "payment"})
//	if err != nil {
//	    // misconfigured flow; abort the render
//	}
//	_ = res.Active // "payment"
package checkout
