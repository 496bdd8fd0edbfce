package lazylist

import (
	"testing"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestLookupRenderLimit(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	s.Test("unset", func(t *testcase.T) {
		testcase.UnsetEnv(t, RenderLimitEnvKey)
		_, ok := lookupRenderLimit()
		assert.False(t, ok)
	})

	s.Test("positive number", func(t *testcase.T) {
		testcase.SetEnv(t, RenderLimitEnvKey, "42")
		limit, ok := lookupRenderLimit()
		assert.True(t, ok)
		assert.Equal(t, 42, limit)
	})

	s.Test("zero or negative falls back to the default", func(t *testcase.T) {
		testcase.SetEnv(t, RenderLimitEnvKey, "0")
		_, ok := lookupRenderLimit()
		assert.False(t, ok)
	})

	s.Test("not a number falls back to the default", func(t *testcase.T) {
		testcase.SetEnv(t, RenderLimitEnvKey, "many")
		_, ok := lookupRenderLimit()
		assert.False(t, ok)
	})
}
