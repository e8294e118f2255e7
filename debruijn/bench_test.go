package debruijn_test

import (
	"testing"

	"github.com/katalvlaran/pamstim/debruijn"
)

// BenchmarkGenerate_Binary16 measures B(2,16), 65,536 symbols.
func BenchmarkGenerate_Binary16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := debruijn.Generate(2, 16); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_PAM4x7 measures B(4,7), 16,384 symbols.
func BenchmarkGenerate_PAM4x7(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := debruijn.Generate(4, 7); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
