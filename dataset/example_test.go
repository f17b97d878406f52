// SPDX-License-Identifier: MIT
package dataset_test

import (
	"fmt"
	"strings"

	"github.com/nhdbn-lab/nhdbn/dataset"
	"github.com/nhdbn-lab/nhdbn/featureset"
)

// ExampleSelect projects a dataset onto a feature set; the response stays
// behind in the full dataset.
func ExampleSelect() {
	d := dataset.New()
	_ = d.AddFeature("X1", []float64{1, 2})
	_ = d.AddFeature("X2", []float64{3, 4})
	_ = d.AddFeature("X3", []float64{5, 6})
	_ = d.SetResponse("y", []float64{0, 1})

	sel, err := dataset.Select(d, featureset.New(3, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(sel.FeatureNames())
	_, hasResponse := sel.Response("y")
	fmt.Println("response carried:", hasResponse)
	// Output:
	// [X1 X3]
	// response carried: false
}

// ExampleParseCoefs reads one bracketed coefficient vector per line.
func ExampleParseCoefs() {
	coefs, err := dataset.ParseCoefs(strings.NewReader("[0.5, -0.2, 0.7]\n[1 2]\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(coefs)
	// Output: [[0.5 -0.2 0.7] [1 2]]
}
