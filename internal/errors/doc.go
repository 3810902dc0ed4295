// Package errors provides error handling conventions for the fel4cfg CLI.
//
// It defines exit code constants following Unix conventions, an
// [ExitError] type that carries an exit code and an optional suggestion,
// and thin pass-throughs to the cockroachdb/errors primitives so command
// code needs a single errors import.
//
//	err := cliErrors.NewManifestError(resolveErr)
//	var exitErr *cliErrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
