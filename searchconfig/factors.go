package searchconfig

import "github.com/eyal-weiss/laddersearch/estimation"

func estimationFactors(c BeautyConfig) estimation.BeautyFactors {
	return estimation.BeautyFactors{
		First:  c.FactorFirst,
		Second: c.FactorSecond,
		Third:  c.FactorThird,
	}
}
