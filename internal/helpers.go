package internal

import "fmt"

// AssertNoError panics if err is set. It guards invariants whose violation indicates a bug, not a user error.
func AssertNoError(err error, because string) {
	if err != nil {
		panic(fmt.Errorf("error unexpected because %s: %w", because, err))
	}
}
