package graph

// The GraphQL engine formats any resolver error that implements
// gqlerrors.ExtendedError with its extensions attached, which is how
// clients distinguish bad input from missing authentication.

const (
	codeBadUserInput    = "BAD_USER_INPUT"
	codeUnauthenticated = "UNAUTHENTICATED"
)

type requestError struct {
	message    string
	extensions map[string]interface{}
}

func (e *requestError) Error() string {
	return e.message
}

func (e *requestError) Extensions() map[string]interface{} {
	return e.extensions
}

// newValidationError reports malformed or constraint-violating input.
// The offending arguments ride along for diagnostics.
func newValidationError(message string, invalidArgs map[string]interface{}) error {
	return &requestError{
		message: message,
		extensions: map[string]interface{}{
			"code":        codeBadUserInput,
			"invalidArgs": invalidArgs,
		},
	}
}

// newAuthenticationError reports missing or rejected credentials,
// deliberately without saying which part was wrong.
func newAuthenticationError(message string) error {
	return &requestError{
		message: message,
		extensions: map[string]interface{}{
			"code": codeUnauthenticated,
		},
	}
}
