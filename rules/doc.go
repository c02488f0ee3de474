// Package rules provides ready-made validators for the validation chain
// evaluator.
//
// Every constructor returns a validation.Validator that carries its own error
// message; messages are used verbatim. Synchronous rules cover common string
// and ordered-value checks, Tag delegates to go-playground/validator tags, and
// Remote asks an HTTP endpoint asynchronously.
//
//	username := field.NewFieldState("").Validators(
//	    rules.Required("username is required"),
//	    rules.MinLen(3, "at least 3 characters"),
//	    rules.Tag[string]("alphanum", "letters and digits only"),
//	    rules.Remote(client, "/api/check/username", "username is taken"),
//	)
package rules
