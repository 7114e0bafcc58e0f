package util

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	// Must not panic or attempt to exit the test process.
	MustErrorNilOrExit(nil)
}

// MustErrorNilOrExit exits the process for every non-nil error, so its exit
// paths, and the exit code it takes from a flags.Error, are not exercised
// here; this only checks the flags.Error type that exit code comes from.
func Test_MustErrorNilOrExit_FlagsErrorCarriesType(t *testing.T) {
	err := &flags.Error{Type: flags.ErrRequired, Message: "missing required flag"}
	require.Equal(t, flags.ErrRequired, err.Type)
}
