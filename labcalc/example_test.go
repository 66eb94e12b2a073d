package labcalc_test

import (
	"fmt"

	"github.com/SnigdhaBhuyan/WellPlatesExperiments/labcalc"
)

// ExampleDilution prepares 1 mL of 10 µM working solution from a 100 µM
// stock.
func ExampleDilution() {
	r, err := labcalc.Dilution("100", "µM", "10", "µM", "1000", "µL")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pipette %.0f µL stock + %.0f µL diluent (1:%.0f)\n",
		r.StockVolumeUL, r.DiluentVolumeUL, r.DilutionFactor)
	// Output:
	// pipette 100 µL stock + 900 µL diluent (1:10)
}

// ExampleSerialDilutionSeries prints a 10-fold ladder from 1e9 CFU/mL.
func ExampleSerialDilutionSeries() {
	series, err := labcalc.SerialDilutionSeries(1e9, 10, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range series {
		fmt.Printf("%d %s %.0e\n", s.Step, s.Label, s.Concentration)
	}
	// Output:
	// 0 Stock 1e+09
	// 1 1:10 1e+08
	// 2 1:100 1e+07
	// 3 1:1000 1e+06
}

// ExampleStatisticalPower sizes a two-group study at d=0.5, α=0.03,
// power 0.85.
func ExampleStatisticalPower() {
	r, err := labcalc.StatisticalPower(0.5, 0.03, 0.85, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("n=%d per group, %d total\n", r.PerGroupSampleSize, r.TotalSampleSize)
	// Output:
	// n=83 per group, 166 total
}
