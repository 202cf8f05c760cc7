package main

import (
	"fmt"

	"github.com/gurre/si"
)

func main() {
	// Calculate heat exchange rate
	massFlow, _ := si.Kilograms(2.5).Divide(si.Seconds(1)) // 2.5 kg/s of water
	specificHeat := si.MustParseScalar("4186 J/(kg·K)")    // Specific heat of water
	tempDiff := si.NewScalar(15, si.MustParseUnit("K"))    // Temperature difference of 15K
	heatRate, _ := massFlow.Multiply(specificHeat)
	heatRate, _ = heatRate.Multiply(tempDiff)

	fmt.Println("Heat exchange rate:", si.FormatScalar(heatRate, si.DefaultFormatOptions())) // In watts

}
