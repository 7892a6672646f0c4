// Package validator provides rule-based validation with explicit, composable checks.
//
// A Rule pairs a deferred check with the error reported when the check fails.
// Apply evaluates rules in order and collects every failure, so the order of
// the returned errors always matches the order the rules were given in:
//
//	err := validator.Apply(
//		validator.Required("first_name", req.FirstName),
//		validator.ValidEmail("email", req.Email),
//		validator.Checked("consent", req.Consent),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		for _, field := range errs.Fields() {
//			// field names in rule order
//		}
//	}
//
// Rules report default messages which can be replaced per call site with
// Rule.WithMessage. Rules for the same field can be chained with FirstOf so
// that only the first failing message is reported.
package validator
