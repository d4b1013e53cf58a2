package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conditions/pkg/condition"
)

func TestEmptiness(t *testing.T) {
	var nilSlice []int
	var nilString *string
	empty := ""

	t.Run("IsEmpty", func(t *testing.T) {
		assert.NoError(t, condition.Requires("", "s").IsEmpty().Err())
		assert.NoError(t, condition.Requires(nilSlice, "xs").IsEmpty().Err())
		assert.NoError(t, condition.Requires(map[string]int{}, "m").IsEmpty().Err())
		assert.NoError(t, condition.Requires(&empty, "s").IsEmpty().Err())

		err := condition.Requires([]int{1}, "xs").IsEmpty().Err()
		assert.EqualError(t, err, "xs should be empty. The actual length is 1.")
		assert.ErrorIs(t, condition.Requires(nilString, "s").IsEmpty().Err(), condition.ErrArgumentNull)
	})

	t.Run("IsNotEmpty", func(t *testing.T) {
		assert.NoError(t, condition.Requires([]int{1}, "xs").IsNotEmpty().Err())

		err := condition.Requires(nilSlice, "xs").IsNotEmpty().Err()
		var null *condition.ArgumentNullError
		require.ErrorAs(t, err, &null)
		assert.Equal(t, "xs should not be empty.", err.Error())

		err = condition.Requires([]int{}, "xs").IsNotEmpty().Err()
		var invalid *condition.ArgumentInvalidError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("IsNullOrEmpty", func(t *testing.T) {
		assert.NoError(t, condition.Requires(nilString, "s").IsNullOrEmpty().Err())
		assert.NoError(t, condition.Requires("", "s").IsNullOrEmpty().Err())
		assert.Error(t, condition.Requires("x", "s").IsNullOrEmpty().Err())
	})

	t.Run("IsNotNullOrEmpty", func(t *testing.T) {
		assert.NoError(t, condition.Requires("x", "s").IsNotNullOrEmpty().Err())
		assert.ErrorIs(t, condition.Requires(nilString, "s").IsNotNullOrEmpty().Err(), condition.ErrArgumentNull)
		assert.ErrorIs(t, condition.Requires("", "s").IsNotNullOrEmpty().Err(), condition.ErrArgumentInvalid)
	})
}

func TestLength(t *testing.T) {
	t.Run("strings count runes", func(t *testing.T) {
		assert.NoError(t, condition.Requires("héllo", "s").HasLength(5).Err())
	})

	t.Run("HasLength and DoesNotHaveLength", func(t *testing.T) {
		assert.NoError(t, condition.Requires([]string{"a", "b"}, "xs").HasLength(2).Err())
		assert.EqualError(t, condition.Requires([]string{"a"}, "xs").HasLength(2).Err(),
			"xs should have a length of 2. The actual length is 1.")
		assert.NoError(t, condition.Requires([3]int{}, "arr").DoesNotHaveLength(2).Err())
		assert.Error(t, condition.Requires(map[int]bool{1: true}, "m").DoesNotHaveLength(1).Err())
	})

	t.Run("bounds", func(t *testing.T) {
		s := "abcd"
		assert.NoError(t, condition.Requires(s, "s").IsShorterThan(5).Err())
		assert.NoError(t, condition.Requires(s, "s").IsShorterOrEqual(4).Err())
		assert.NoError(t, condition.Requires(s, "s").IsLongerThan(3).Err())
		assert.NoError(t, condition.Requires(s, "s").IsLongerOrEqual(4).Err())

		assert.Error(t, condition.Requires(s, "s").IsShorterThan(4).Err())
		assert.Error(t, condition.Requires(s, "s").IsShorterOrEqual(3).Err())
		assert.Error(t, condition.Requires(s, "s").IsLongerThan(4).Err())
		assert.EqualError(t, condition.Requires(s, "s").IsLongerOrEqual(5).Err(),
			"s should be longer than or equal to 5. The actual length is 4.")
	})

	t.Run("unsupported types", func(t *testing.T) {
		assert.ErrorIs(t, condition.Requires(42, "n").HasLength(2).Err(), condition.ErrUnsupportedType)
	})
}

func TestContains(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		assert.NoError(t, condition.Requires("hello world", "s").Contains("world").Err())
		assert.EqualError(t, condition.Requires("hello", "s").Contains("world").Err(), "s should contain world.")
		assert.NoError(t, condition.Requires("hello", "s").DoesNotContain("world").Err())
		assert.ErrorIs(t, condition.Requires("hello", "s").Contains(1).Err(), condition.ErrUnsupportedType)
	})

	t.Run("slices", func(t *testing.T) {
		xs := []string{"a", "b"}
		assert.NoError(t, condition.Requires(xs, "xs").Contains("b").Err())
		assert.Error(t, condition.Requires(xs, "xs").Contains("c").Err())
		assert.EqualError(t, condition.Requires(xs, "xs").DoesNotContain("a").Err(), "xs should not contain a.")
	})

	t.Run("maps check keys", func(t *testing.T) {
		m := map[string]int{"k": 1}
		assert.NoError(t, condition.Requires(m, "m").Contains("k").Err())
		assert.Error(t, condition.Requires(m, "m").Contains("x").Err())
		assert.Error(t, condition.Requires(m, "m").Contains(1).Err())
	})

	t.Run("unhashable element in interface-keyed map", func(t *testing.T) {
		m := map[any]int{"a": 1}
		assert.ErrorIs(t, condition.Requires(m, "m").Contains([]int{1}).Err(), condition.ErrArgumentInvalid)
		assert.NoError(t, condition.Requires(m, "m").DoesNotContain(map[string]int{}).Err())
		assert.NoError(t, condition.Requires(m, "m").Contains("a").Err())
	})

	t.Run("nil collections", func(t *testing.T) {
		var xs []string
		assert.ErrorIs(t, condition.Requires(xs, "xs").Contains("a").Err(), condition.ErrArgumentNull)
		assert.NoError(t, condition.Requires(xs, "xs").DoesNotContain("a").Err())
	})
}

func TestAffixes(t *testing.T) {
	var null *string

	assert.NoError(t, condition.Requires("https://x", "url").StartsWith("https://").Err())
	assert.EqualError(t, condition.Requires("http://x", "url").StartsWith("https://").Err(),
		"url should start with 'https://'. The actual value is http://x.")
	assert.NoError(t, condition.Requires("http://x", "url").DoesNotStartWith("https://").Err())
	assert.Error(t, condition.Requires("https://x", "url").DoesNotStartWith("https://").Err())

	assert.NoError(t, condition.Requires("report.pdf", "file").EndsWith(".pdf").Err())
	assert.Error(t, condition.Requires("report.doc", "file").EndsWith(".pdf").Err())
	assert.NoError(t, condition.Requires("report.doc", "file").DoesNotEndWith(".pdf").Err())
	assert.Error(t, condition.Requires("report.pdf", "file").DoesNotEndWith(".pdf").Err())

	assert.ErrorIs(t, condition.Requires(null, "s").StartsWith("a").Err(), condition.ErrArgumentNull)
	assert.NoError(t, condition.Requires(null, "s").DoesNotEndWith("a").Err())
	assert.ErrorIs(t, condition.Requires(3, "n").EndsWith("a").Err(), condition.ErrUnsupportedType)
}

func TestEvaluate(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		n := 4
		assert.NoError(t, condition.Requires(n, "n").Evaluate(n%2 == 0).Err())
		assert.EqualError(t, condition.Requires(5, "n").Evaluate(false).Err(), "n should be valid. The actual value is 5.")
	})

	t.Run("func", func(t *testing.T) {
		even := func(n int) bool { return n%2 == 0 }
		assert.NoError(t, condition.Requires(4, "n").EvaluateFunc(even).Err())
		assert.EqualError(t, condition.Requires(5, "n").EvaluateFunc(even).Err(),
			"the given condition should hold for n. The actual value is 5.")
		assert.EqualError(t, condition.Requires(7, "n").EvaluateFunc(even, "{argumentName} should be even").Err(),
			"n should be even. The actual value is 7.")
	})

	t.Run("nil func fails", func(t *testing.T) {
		assert.Error(t, condition.Requires(1, "n").EvaluateFunc(nil).Err())
	})

	t.Run("nil value reports argument null", func(t *testing.T) {
		var p *int
		assert.ErrorIs(t, condition.Requires(p, "p").Evaluate(false).Err(), condition.ErrArgumentNull)
	})
}
