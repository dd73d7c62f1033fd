package oddity_test

import (
	"fmt"

	oddity "github.com/cwbudde/algo-oddity"
)

func ExampleDetectOutliers() {
	s := oddity.ConstructSeries([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 100})

	found, err := oddity.DetectOutliers(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(found)
	// Output:
	// [9:100]
}

func ExampleDecompose() {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i%4) + 0.5*float64(i)
	}
	period := 4

	detrended, seasonal, residual, err := oddity.Decompose(oddity.ConstructSeries(values), oddity.Options{Period: &period})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(detrended.Len(), seasonal.Len(), residual.Len())
	// Output:
	// 33 33 33
}
