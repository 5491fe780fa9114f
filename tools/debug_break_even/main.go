package main

import (
	"context"
	"fmt"
	"os"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/config"
	"github.com/careercalc/career-calculator/internal/domain"
)

func main() {
	var cfg *domain.Configuration
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: debug_break_even <config-file>  (using built-in example careers)")
		cfg = config.DefaultConfiguration()
	} else {
		p := config.NewInputParser()
		loaded, err := p.LoadFromFile(os.Args[1])
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	res, err := calculation.NewComparisonEngine().RunComparison(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	a, ok := res.FindCareer(res.Primary.Baseline)
	if !ok {
		panic("baseline missing from results")
	}
	b, ok := res.FindCareer(res.Primary.Challenger)
	if !ok {
		panic("challenger missing from results")
	}

	fmt.Println("Index,BaselineAnnual,BaselineCumulative,ChallengerAnnual,ChallengerCumulative,Diff")
	for i := 0; i < len(a.Series) && i < len(b.Series); i++ {
		fmt.Printf("%d,%s,%s,%s,%s,%s\n", i,
			a.Series.AnnualNet(i).StringFixed(0), a.Series[i].StringFixed(0),
			b.Series.AnnualNet(i).StringFixed(0), b.Series[i].StringFixed(0),
			b.Series[i].Sub(a.Series[i]).StringFixed(0))
	}

	be, found := calculation.FindBreakEven(a.Series, b.Series)
	fmt.Printf("\nBreakEven: %+v, found=%v\n", be, found)
}
