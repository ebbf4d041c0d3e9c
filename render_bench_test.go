package sdui

import (
	"fmt"
	"testing"
)

var benchStatuses = []string{"pending", "inProgress", "completed", "skipped"}

// Generate a route worth of service stops.
func generateJobs(n int) []Record {
	jobs := make([]Record, n)
	for i := range jobs {
		jobs[i] = &testJob{
			id:       fmt.Sprintf("job-%d", i),
			customer: fmt.Sprintf("Customer %d", i),
			status:   benchStatuses[i%len(benchStatuses)],
			progress: float64(i%10) * 10,
		}
	}
	return jobs
}

const benchScreenDoc = `{"version":1,"component":{"id":"root","type":"scroll","children":[
	{"id":"today","type":"section","label":"Today","children":[
		{"id":"jobs","type":"list","itemView":{"id":"row","type":"card","children":[
			{"id":"name","type":"text","valueKey":"customer"},
			{"id":"chip","type":"statusChip","valueKey":"status"},
			{"id":"prog","type":"progress","valueKey":"progress","label":"Route"}]}}]}]}}`

func benchContext(n int) Context {
	ctx := testContext()
	ctx.Records.Set(generateJobs(n))
	return ctx
}

// Benchmark: decode a schema document into a component tree
func BenchmarkDecodeScreen(b *testing.B) {
	doc := []byte(benchScreenDoc)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeScreen(doc); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark: full screen render, cold cache vs warm cache
func BenchmarkRenderScreen(b *testing.B) {
	screen, err := DecodeScreen([]byte(benchScreenDoc))
	if err != nil {
		b.Fatal(err)
	}
	ctx := benchContext(100)

	b.Run("Cold", func(b *testing.B) {
		e := newTestEngine()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			e.Cache().Clear()
			_ = e.RenderScreen(screen, ctx)
		}
	})

	b.Run("Warm", func(b *testing.B) {
		e := New(testPlatform{}).WithCache(256)
		_ = e.RenderScreen(screen, ctx) // prime

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = e.RenderScreen(screen, ctx)
		}
	})

	b.Run("Disabled", func(b *testing.B) {
		e := New(testPlatform{}).WithCache(0)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = e.RenderScreen(screen, ctx)
		}
	})
}

// Benchmark: one record mutates between frames, full rebuild vs targeted
// invalidation
func BenchmarkSingleRecordUpdate(b *testing.B) {
	screen, err := DecodeScreen([]byte(benchScreenDoc))
	if err != nil {
		b.Fatal(err)
	}
	ctx := benchContext(100)

	b.Run("FullInvalidate", func(b *testing.B) {
		e := New(testPlatform{}).WithCache(256)
		_ = e.RenderScreen(screen, ctx)
		for i := 0; i < b.N; i++ {
			ctx.Records.At(50).(*testJob).progress++
			e.Cache().Clear()
			_ = e.RenderScreen(screen, ctx)
		}
	})

	b.Run("InvalidateRecord", func(b *testing.B) {
		e := New(testPlatform{}).WithCache(256)
		_ = e.RenderScreen(screen, ctx)
		for i := 0; i < b.N; i++ {
			ctx.Records.At(50).(*testJob).progress++
			e.Cache().InvalidateRecord("job-50")
			_ = e.RenderScreen(screen, ctx)
		}
	})
}

// Benchmark: signature hashing, the per-subtree cost of a warm render
func BenchmarkCacheSignature(b *testing.B) {
	screen, err := DecodeScreen([]byte(benchScreenDoc))
	if err != nil {
		b.Fatal(err)
	}
	var row *Component
	screen.Component.Walk(func(c *Component) {
		if c.Kind == KindCard {
			row = c
		}
	})
	if row == nil {
		b.Fatal("no card in bench screen")
	}
	ctx := testContext().WithCurrentRecord(job("job-1", "Customer 1"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CacheSignature(row.Path(), row, ctx)
	}
}
