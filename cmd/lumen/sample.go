package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/bignum"
	"lumen/internal/heap"
	"lumen/internal/snapshot"
	"lumen/internal/typemeta"
	"lumen/internal/word"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <out>",
	Short: "Write a demonstration snapshot",
	Long:  `Write a snapshot exercising every value kind, for trying the render and view commands without a runtime`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	h, table, root := buildSampleGraph()

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", args[0], err)
	}
	if err := snapshot.Encode(f, h, table, root); err != nil {
		f.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

func buildSampleGraph() (*heap.Heap, *typemeta.Table, word.Word) {
	h := heap.New()
	table := typemeta.NewTable(typemeta.DefaultBucketCount)

	const pointHash = 0x6c756d_706f696e
	const shapeHash = 0x6c756d_73686170
	table.Register(typemeta.TypeInfo{
		Hash:   pointHash,
		Kind:   typemeta.RecordType,
		Name:   "Point",
		Fields: []string{"x", "y"},
	})
	table.Register(typemeta.TypeInfo{
		Hash: shapeHash,
		Kind: typemeta.SumType,
		Name: "Shape",
		Variants: []typemeta.VariantInfo{
			{ID: 0, Name: "Dot", Arity: 0},
			{ID: 1, Name: "Segment", Arity: 2},
			{ID: 2, Name: "Circle", Arity: 2, Fields: []string{"center", "radius"}},
		},
	})

	num := func(n int64) word.Word {
		w, _ := word.FromInt(n)
		return w
	}
	point := func(x, y int64) word.Word {
		return h.AllocRecord(pointHash, num(x), num(y))
	}

	list := h.AllocVariant(typemeta.ListTypeHash, typemeta.ListNil)
	for _, n := range []int64{30, 20, 10} {
		list = h.AllocVariant(typemeta.ListTypeHash, typemeta.ListCons, num(n), list)
	}

	big, _ := bignum.ParseDecimal("123456789012345678901234567890")
	root := h.AllocTuple(
		h.AllocString("hello from lumen"),
		list,
		h.AllocArray(word.FromChar('a'), word.FromChar('b')),
		point(3, 4),
		h.AllocVariant(shapeHash, 2, point(0, 0), num(9)),
		h.AllocVariant(typemeta.OptionTypeHash, typemeta.OptionSome, h.AllocFloat32(2.5)),
		h.AllocVariant(typemeta.ResultTypeHash, typemeta.ResultErr, h.AllocString("nope")),
		h.AllocBytes([]byte{0xde, 0xad, 0xbe, 0xef}),
		h.AllocBigInt(big),
		h.AllocRational(bignum.RatFromInt64(22, 7)),
		h.AllocTuple(word.FromBool(true)),
		h.AllocFunc("main"),
	)
	return h, table, root
}
