package benchmarks

import (
	"strings"
	"testing"

	"github.com/randalmurphal/labelkit/pkg/labelkit"
)

// uncached compiles through a cache-free engine so every iteration pays
// the full parse cost.
func uncached() *labelkit.Engine {
	return labelkit.New(labelkit.WithCacheSize(0))
}

// BenchmarkCompile_SingleVar parses the smallest useful template.
func BenchmarkCompile_SingleVar(b *testing.B) {
	e := uncached()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile("{title}")
	}
}

// BenchmarkCompile_ReleaseLabel parses a realistic release label.
func BenchmarkCompile_ReleaseLabel(b *testing.B) {
	e := uncached()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile(releaseTemplate)
	}
}

// BenchmarkCompile_ModifierChain parses a long modifier chain.
func BenchmarkCompile_ModifierChain(b *testing.B) {
	e := uncached()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile("{title|lower|replace(the, a)|title|truncate(40)}")
	}
}

// BenchmarkCompile_ConditionHeavy parses chained comparison conditions.
func BenchmarkCompile_ConditionHeavy(b *testing.B) {
	e := uncached()
	tpl := "{if a > 1 and b < 2 or c = 'x' and d ~ 'y'}t{else}f{/if}"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile(tpl)
	}
}

// BenchmarkCompile_Nested_8 parses eight nested conditional blocks.
func BenchmarkCompile_Nested_8(b *testing.B) {
	e := uncached()
	tpl := strings.Repeat("{if x}", 8) + "{v}" + strings.Repeat("{/if}", 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile(tpl)
	}
}

// BenchmarkCompile_Long_100Vars parses a 100-variable template.
func BenchmarkCompile_Long_100Vars(b *testing.B) {
	e := uncached()
	tpl := strings.Repeat("{v} ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile(tpl)
	}
}

// BenchmarkCompile_MalformedRecovery parses text full of stray braces.
func BenchmarkCompile_MalformedRecovery(b *testing.B) {
	e := uncached()
	tpl := strings.Repeat("{ {1} {} ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Compile(tpl)
	}
}
