//go:build unit || e2e

package dbtest

import (
	"strings"

	"go.uber.org/mock/gomock"
)

type sqlMatcher []string

func (m sqlMatcher) Matches(x any) bool {
	q, ok := x.(string)
	if !ok {
		return false
	}
	for _, p := range m {
		if !strings.Contains(q, p) {
			return false
		}
	}
	return true
}

func (m sqlMatcher) String() string {
	return "sql containing " + strings.Join(m, ", ")
}

// SQL matches a statement that contains every fragment.
func SQL(fragments ...string) gomock.Matcher {
	return sqlMatcher(fragments)
}

// AnyArgs matches n positional query arguments.
func AnyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = gomock.Any()
	}
	return args
}
