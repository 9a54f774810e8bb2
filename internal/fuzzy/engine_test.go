package fuzzy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(t *testing.T, name string) *Variable {
	t.Helper()
	v, err := NewVariable(name, NewUniverse(0, 101, DefaultResolution),
		Term{Name: "lo", MF: Trapezoid(-100, 0, 20, 60)},
		Term{Name: "hi", MF: Trapezoid(40, 80, 100, 1000)},
	)
	require.NoError(t, err)
	return v
}

func testOutput(t *testing.T) *Variable {
	t.Helper()
	v, err := NewVariable("out", NewUniverse(0, 101, DefaultResolution),
		Term{Name: "slow", MF: Trapezoid(-100, 0, 20, 30)},
		Term{Name: "fast", MF: Trapezoid(80, 90, 100, 1000)},
	)
	require.NoError(t, err)
	return v
}

func testRules() RuleBase {
	return NewRuleBase(
		Rule{First: "lo", Second: "lo", Output: "slow"},
		Rule{First: "lo", Second: "hi", Output: "fast"},
		Rule{First: "hi", Second: "lo", Output: "fast"},
		Rule{First: "hi", Second: "hi", Output: "fast"},
	)
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Config{
		First:  testInput(t, "a"),
		Second: testInput(t, "b"),
		Output: testOutput(t),
		Rules:  testRules(),
	})
	require.NoError(t, err)
	return e
}

func TestEngine_Evaluate(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name   string
		x1, x2 float64
		want   float64
	}{
		{"both low", 10, 10, 0},
		{"both high", 90, 90, 90.081},
		{"mixed", 10, 90, 90.081},
		{"single partial rule", 30, 70, 87.554},
		{"four-way tie", 50, 50, 61.874},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.Evaluate(tt.x1, tt.x2), 0.01)
		})
	}
}

func TestEngine_InferDetails(t *testing.T) {
	e := testEngine(t)

	res := e.Infer(30, 70)

	require.Len(t, res.Activations, 4)
	assert.True(t, res.Fired())
	assert.InDelta(t, 0.75, res.Denominator, tol)
	assert.InDelta(t, res.Output*res.Denominator, res.Numerator, 1e-9)

	for i, a := range res.Activations {
		assert.Equal(t, e.Rules().At(i), a.Rule)
		assert.Equal(t, min(a.FirstDegree, a.SecondDegree), a.Alpha)
	}
	assert.Equal(t, 0.0, res.Activations[0].Alpha)
	assert.InDelta(t, 0.75, res.Activations[1].Alpha, tol)
}

func TestEngine_NoRuleFires(t *testing.T) {
	e := testEngine(t)

	res := e.Infer(5000, 5000)

	assert.False(t, res.Fired())
	assert.Equal(t, 0.0, res.Output)
	assert.Equal(t, 0.0, res.Denominator)
	_, ok := res.Dominant()
	assert.False(t, ok)
}

func TestResult_DominantPrefersEarlierRule(t *testing.T) {
	e := testEngine(t)

	res := e.Infer(50, 50)
	d, ok := res.Dominant()

	require.True(t, ok)
	assert.Equal(t, e.Rules().At(0), d.Rule)
	assert.InDelta(t, 0.25, d.Alpha, tol)
}

func TestEngine_OutputStaysInUniverseHull(t *testing.T) {
	e := testEngine(t)

	for x1 := -20.0; x1 <= 120; x1 += 7 {
		for x2 := -20.0; x2 <= 120; x2 += 7 {
			got := e.Evaluate(x1, x2)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, 101.0)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	t.Run("nil variable", func(t *testing.T) {
		_, err := New(Config{First: testInput(t, "a"), Output: testOutput(t), Rules: testRules()})
		require.ErrorIs(t, err, ErrNilVariable)
	})

	t.Run("unknown consequent", func(t *testing.T) {
		_, err := New(Config{
			First:  testInput(t, "a"),
			Second: testInput(t, "b"),
			Output: testOutput(t),
			Rules: NewRuleBase(
				Rule{First: "lo", Second: "lo", Output: "slow"},
				Rule{First: "lo", Second: "hi", Output: "warp"},
			),
		})

		var ruleErr *ErrRule
		require.ErrorAs(t, err, &ruleErr)
		assert.Equal(t, 1, ruleErr.Index)

		var unknown *ErrUnknownTerm
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "out", unknown.Variable)
		assert.Equal(t, "warp", unknown.Term)
	})

	t.Run("empty rule base", func(t *testing.T) {
		e, err := New(Config{First: testInput(t, "a"), Second: testInput(t, "b"), Output: testOutput(t)})
		require.NoError(t, err)
		assert.Equal(t, 0.0, e.Evaluate(50, 50))
		assert.False(t, e.Infer(50, 50).Fired())
	})
}

func TestEngine_ReplaceFirst(t *testing.T) {
	e := testEngine(t)
	before := e.Evaluate(30, 30)

	// Same vocabulary, shifted boundaries.
	shifted, err := NewVariable("a", NewUniverse(0, 101, DefaultResolution),
		Term{Name: "lo", MF: Trapezoid(-100, 0, 5, 10)},
		Term{Name: "hi", MF: Trapezoid(5, 10, 100, 1000)},
	)
	require.NoError(t, err)
	require.NoError(t, e.ReplaceFirst(shifted))

	first, _, _ := e.Variables()
	assert.Same(t, shifted, first)
	assert.InDelta(t, 0, before, tol)
	assert.InDelta(t, 87.554, e.Evaluate(30, 30), 0.01)
}

func TestEngine_ReplaceRejectsIncompatibleVocabulary(t *testing.T) {
	e := testEngine(t)
	before := e.Evaluate(30, 70)

	wrong, err := NewVariable("a", NewUniverse(0, 101, 11),
		Term{Name: "cold", MF: Trapezoid(-100, 0, 20, 60)},
	)
	require.NoError(t, err)

	var ruleErr *ErrRule
	require.ErrorAs(t, e.ReplaceFirst(wrong), &ruleErr)
	require.ErrorAs(t, e.ReplaceSecond(wrong), &ruleErr)
	require.ErrorIs(t, e.ReplaceFirst(nil), ErrNilVariable)

	assert.Equal(t, before, e.Evaluate(30, 70))
}

func TestEngine_ConcurrentEvaluateAndReplace(t *testing.T) {
	e := testEngine(t)
	alt := testInput(t, "a")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i == 0 && j%10 == 0 {
					assert.NoError(t, e.ReplaceFirst(alt))
					continue
				}
				got := e.Evaluate(float64(j*2), float64(i*10))
				assert.GreaterOrEqual(t, got, 0.0)
			}
		}(i)
	}
	wg.Wait()
}

func TestEngine_Curves(t *testing.T) {
	e := testEngine(t)

	curves := e.Curves()

	require.Len(t, curves, 6)
	var vars []string
	for _, c := range curves {
		vars = append(vars, c.Variable)
	}
	assert.Equal(t, []string{"a", "a", "b", "b", "out", "out"}, vars)
}
