package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Do() }

type impl struct{}

func (i *impl) Do() {}

func TestCheckInit(t *testing.T) {
	var empty provider
	var typedNil *impl
	require.NotPanics(t, func() { CheckInit("store", &impl{}, "limit", 0) })
	require.PanicsWithValue(t, "dependencies not initialized: store, jobs", func() {
		CheckInit("store", empty, "jobs", typedNil, "ok", &impl{})
	})
	require.Panics(t, func() { CheckInit("store") })
}
