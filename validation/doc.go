// Package validation implements the sequential validator-chain evaluator.
//
// A [Validator] is any function of a value that returns a [Result]. The
// result is an explicit tagged union: a synchronous [models.ValidationResponse]
// built with [Sync], [Valid] or [Invalid], or a [Pending] computation built
// with [Async]. The evaluator dispatches on that tag and never inspects the
// validator itself.
//
// [Apply] runs validators strictly left to right and stops at the first
// error:
//
//	msg, err := validation.Apply(ctx, username,
//	    rules.Required[string]("username is required"),
//	    rules.MinLen(3, "username is too short"),
//	    usernameAvailable, // async, hits the network
//	)
//	if err != nil {
//	    // a validator failed internally; this is a fault, not a validation error
//	}
//	if msg != "" {
//	    // first validation error in list order
//	}
//
// An asynchronous validator suspends the chain until its pending computation
// settles. Nothing after it runs before its response is known, and no two
// validators of one evaluation ever run at the same time. Evaluations share
// no state, so independent calls may run concurrently.
//
// The evaluator does not time out or cancel by itself. A caller that needs a
// bound passes a context with a deadline; the evaluation ends with the
// context's error if it is done while a pending computation is outstanding.
package validation
