package test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/mhr3/jsoniter-skip"
)

// generateDataset builds a deterministic document shaped like an event log:
// an array of records with nested objects, escaped strings and numbers.
func generateDataset(records int, escaped bool) []byte {
	rnd := rand.New(rand.NewSource(int64(records)))
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := 0; i < records; i++ {
		if i > 0 {
			sb.WriteString(",\n")
		}
		text := fmt.Sprintf("event %d from host-%d", i, rnd.Intn(64))
		if escaped {
			text = fmt.Sprintf(`said "hi" at C:\temp\%d`, i)
		}
		fmt.Fprintf(&sb, `  {"id": %d, "ts": %s, "text": %s, "ok": %t, "parent": null, `,
			i, strconv.FormatFloat(rnd.Float64()*1e9, 'f', 3, 64), strconv.Quote(text), rnd.Intn(2) == 0)
		sb.WriteString(`"tags": [`)
		for j := rnd.Intn(5); j > 0; j-- {
			fmt.Fprintf(&sb, `"t%d", `, rnd.Intn(100))
		}
		fmt.Fprintf(&sb, `"last"], "geo": {"lat": %g, "lon": %g, "path": [[1, 2], [3, 4e-2]]}}`,
			rnd.Float64()*180-90, rnd.Float64()*360-180)
	}
	sb.WriteString("\n]")
	return []byte(sb.String())
}

func parseJson(iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		iter.ReadString()
	case jsoniter.NumberValue:
		iter.ReadFloat64()
	case jsoniter.NilValue:
		iter.ReadNil()
	case jsoniter.BoolValue:
		iter.ReadBool()
	case jsoniter.ArrayValue:
		for iter.ReadArray() {
			parseJson(iter)
		}
	case jsoniter.ObjectValue:
		for _, ok := iter.ReadObject(); ok; _, ok = iter.ReadObject() {
			parseJson(iter)
		}
	case jsoniter.InvalidValue:
		return
	default:
		panic("error parsing json")
	}
}

func reportThroughput(b *testing.B, startTime time.Time, bytesProcessed int64) {
	b.ReportMetric(float64(bytesProcessed)/time.Since(startTime).Seconds()/1024/1024, "MB/s")
}

func runBenchmark(b *testing.B, data []byte) {
	run := func(name string, fn func(iter *jsoniter.Iterator)) {
		b.Run(name+"/bytes", func(b *testing.B) {
			startTime := time.Now()
			var bytesProcessed int64

			for i := 0; i < b.N; i++ {
				fn(jsoniter.ParseBytes(jsoniter.ConfigDefault, data))
				bytesProcessed += int64(len(data))
			}

			reportThroughput(b, startTime, bytesProcessed)
		})

		b.Run(name+"/stream", func(b *testing.B) {
			startTime := time.Now()
			var bytesProcessed int64
			iter := jsoniter.Parse(jsoniter.ConfigDefault, nil, 4096)

			for i := 0; i < b.N; i++ {
				iter.Reset(bytes.NewReader(data))
				fn(iter)
				bytesProcessed += int64(len(data))
			}

			reportThroughput(b, startTime, bytesProcessed)
		})
	}

	run("skip", func(iter *jsoniter.Iterator) {
		iter.Skip()
	})
	run("skip-elements", func(iter *jsoniter.Iterator) {
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			_, span := iter.SkipCapturing()
			return span.Len() > 0
		})
	})
	run("strict", func(iter *jsoniter.Iterator) {
		iter.SkipStrict()
	})
	run("parse", parseJson)
}

func BenchmarkDatasetEvents(b *testing.B)        { runBenchmark(b, generateDataset(2000, false)) }
func BenchmarkDatasetEventsEscaped(b *testing.B) { runBenchmark(b, generateDataset(2000, true)) }

func BenchmarkValid(b *testing.B) {
	data := generateDataset(2000, true)
	startTime := time.Now()
	var bytesProcessed int64

	for i := 0; i < b.N; i++ {
		if !jsoniter.ConfigDefault.Valid(data) {
			b.Fatal("dataset not valid")
		}
		bytesProcessed += int64(len(data))
	}

	reportThroughput(b, startTime, bytesProcessed)
}

func TestDatasetIsValid(t *testing.T) {
	for _, escaped := range []bool{false, true} {
		data := generateDataset(50, escaped)
		if !jsoniter.ConfigDefault.Valid(data) {
			t.Fatalf("generated dataset is not valid json:\n%s", data)
		}
		count := 0
		iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			count++
			iter.Skip()
			return true
		})
		if count != 50 {
			t.Fatalf("expected 50 records, got %d", count)
		}
	}
}
