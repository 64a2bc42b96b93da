// Package tabular is a small toolkit for in-memory columnar datasets:
// descriptive statistics over columns and column pairs, and in-place
// preprocessing transforms (missing-value handling, scaling, categorical
// encoding).
//
// # Data representation
//
// A Dataset maps column names to equal-length sequences of cells. A
// Cell is a tagged variant holding a 64-bit float, a categorical token
// or an explicit null, so numeric operations can reject non-numeric
// values with a typed error instead of inspecting dynamic types:
//
//	ds, err := tabular.New(
//	    tabular.Col{Name: "calories", Cells: []tabular.Cell{
//	        tabular.Num(120), tabular.NA(), tabular.Num(95),
//	    }},
//	    tabular.Col{Name: "category", Cells: []tabular.Cell{
//	        tabular.Tok("fruit"), tabular.Tok("grain"), tabular.Tok("fruit"),
//	    }},
//	)
//
// # Statistics
//
// Stats performs read-only queries: Mean, Median, Mode, Variance,
// Stdev, Covariance, Itemset, the frequency tables (absolute, relative,
// cumulative) and first-order ConditionalProbability over a column
// treated as a sequence. Nulls are skipped per operation; see each
// method for its exact policy.
//
// # Preprocessing
//
// MissingValues, Scaler and Encoder hold the same mutable Dataset
// reference and replace column contents in place; the Preprocessing
// facade chains them:
//
//	pp, err := tabular.NewPreprocessing(ds, nil)
//	err = pp.FillNA(tabular.FillMedian, tabular.NA(), "calories").
//	    Scale(tabular.ScaleMinMax, "calories").
//	    Encode(tabular.EncodeOneHot, "category").
//	    Err()
//
// A Pipeline loaded from YAML applies the same operations
// declaratively.
//
// All operations are synchronous and the package does no internal
// locking: a Dataset must not be mutated concurrently with any other
// access.
package tabular
