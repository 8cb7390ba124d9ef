package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value    int
	name     string
	enabled  bool
	lastCall string
}

func (tc *testConfig) setValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.value = v
	tc.lastCall = "setValue"
	return nil
}

func (tc *testConfig) setName(name string) {
	tc.name = name
	tc.lastCall = "setName"
}

func (tc *testConfig) setEnabled(enabled bool) {
	tc.enabled = enabled
	tc.lastCall = "setEnabled"
}

func TestNew(t *testing.T) {
	cfg := &testConfig{}

	opt := New(func(c *testConfig) error { return c.setValue(42) })
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 42, cfg.value)

	opt = New(func(c *testConfig) error { return c.setValue(-1) })
	err := opt.apply(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "value cannot be negative")
}

func TestNamed(t *testing.T) {
	cfg := &testConfig{}

	opt := Named("withValue", func(c *testConfig) error { return c.setValue(-1) })
	err := opt.apply(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "withValue")
	require.Contains(t, err.Error(), "value cannot be negative")
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}

	opt := NoError(func(c *testConfig) { c.setName("test") })
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "test", cfg.name)

	opt = NoError(func(c *testConfig) { c.setEnabled(true) })
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.enabled)
}

func TestApplyInOrder(t *testing.T) {
	cfg := &testConfig{}
	opts := []Option[*testConfig]{
		New(func(c *testConfig) error { return c.setValue(10) }),
		NoError(func(c *testConfig) { c.setName("test") }),
		NoError(func(c *testConfig) { c.setEnabled(true) }),
	}

	require.NoError(t, Apply(cfg, opts...))
	require.Equal(t, 10, cfg.value)
	require.Equal(t, "test", cfg.name)
	require.True(t, cfg.enabled)
	require.Equal(t, "setEnabled", cfg.lastCall)
}

func TestApplyStopsAtFirstErrorAndIdentifiesIt(t *testing.T) {
	cfg := &testConfig{}
	opts := []Option[*testConfig]{
		New(func(c *testConfig) error { return c.setValue(5) }),
		New(func(c *testConfig) error { return c.setValue(-1) }),
		NoError(func(c *testConfig) { c.setName("should not be set") }),
	}

	err := Apply(cfg, opts...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "option 1")
	require.Contains(t, err.Error(), "value cannot be negative")
	require.Equal(t, 5, cfg.value)
	require.Empty(t, cfg.name)
}

func TestApplyEmptyOptions(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply(cfg))
	require.Equal(t, testConfig{}, *cfg)
}

func TestApplyWithGenericHelpers(t *testing.T) {
	withValue := func(v int) Option[*testConfig] {
		return New(func(c *testConfig) error { return c.setValue(v) })
	}
	withName := func(name string) Option[*testConfig] {
		return NoError(func(c *testConfig) { c.setName(name) })
	}

	cfg := &testConfig{}
	require.NoError(t, Apply(cfg, withValue(100), withName("integration")))
	require.Equal(t, 100, cfg.value)
	require.Equal(t, "integration", cfg.name)
}

func TestOptionGenericsWithPrimitiveType(t *testing.T) {
	var num int
	opt := NoError(func(n *int) { *n = 42 })
	require.NoError(t, opt.apply(&num))
	require.Equal(t, 42, num)
}
