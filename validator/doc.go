// Package validator runs structural validation rules over a loaded document,
// accumulating diagnostics instead of failing fast.
//
// Validation is purely additive: every applicable rule appends its issues to
// a Result and none of them aborts the walk, so a malformed parameter never
// hides problems in the parameters, operations, or paths after it. Rules
// express "the document does not have this shape" as appended issues, never
// as errors.
//
//	v := validator.New()
//	result := v.ValidateDocument(doc)
//	for _, issue := range result.Issues() {
//	    fmt.Println(issue.Code, issue.Context, issue.Message)
//	}
//
// # Rules
//
// Parameter rules (also callable directly via ValidateParameters; bare $ref
// parameters are skipped because reference resolution is out of scope):
//
//   - PARAMETER_MISSING_SCHEMA_OR_CONTENT: neither a schema nor a non-empty
//     content mapping is present
//   - PARAMETER_SCHEMA_TYPE_MISSING: a schema is present but declares no type
//
// Document rules applied by ValidateDocument:
//
//   - PATH_MISSING_LEADING_SLASH: a paths key does not start with "/"
//   - RESPONSE_STATUS_CODE_INVALID: a response key is neither a three-digit
//     status code, a 1XX-5XX wildcard, nor "default"
//   - RESPONSE_MEDIA_TYPE_INVALID: a response content key is not a valid
//     media type
//
// # Format predicates
//
// The package also exposes pure, total format predicates for scalar string
// values: IsValidEmail, IsValidURI, IsValidUUID, IsValidDate,
// IsValidDateTime, IsValidIPv4, IsValidIPv6, and IsValidHostname. Each takes
// a string, never panics, and returns a boolean.
package validator
