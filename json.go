package si

import "encoding/json"

type unitJSON struct {
	Dimensionality struct {
		Num [numBaseDimensions]int8 `json:"num"`
		Den [numBaseDimensions]int8 `json:"den"`
	} `json:"dimensionality"`
	ScaleToCoherentSI float64                        `json:"scale_to_coherent_si"`
	NumPrefix         [numBaseDimensions]int          `json:"num_prefix"`
	DenPrefix         [numBaseDimensions]int          `json:"den_prefix"`
	RootName          *string                         `json:"root_name"`
	RootPluralName    *string                         `json:"root_plural_name"`
	Symbol            string                          `json:"symbol"`
	Key               string                          `json:"key"`
	RootSymbol        *string                         `json:"root_symbol"`
	RootSymbolPrefix  int                             `json:"root_symbol_prefix"`
	AllowsSIPrefix    bool                             `json:"allows_si_prefix"`
	IsSpecialSISymbol bool                             `json:"is_special_si_symbol"`
}

// MarshalJSON encodes u using the stable field set: dimensionality
// exponents, scale, per-dimension prefixes, optional named-root fields,
// and the canonical symbol/key.
func (u *Unit) MarshalJSON() ([]byte, error) {
	j := unitJSON{
		ScaleToCoherentSI: u.ScaleToCoherentSI(),
		Symbol:            u.symbol,
		Key:               u.key,
		RootSymbolPrefix:  u.rootSymbolPrefix.Exponent(),
		AllowsSIPrefix:    u.allowsSIPrefix,
		IsSpecialSISymbol: u.isSpecialSISymbol,
	}
	j.Dimensionality.Num = u.dimensionality.num
	j.Dimensionality.Den = u.dimensionality.den
	for i := 0; i < int(numBaseDimensions); i++ {
		j.NumPrefix[i] = u.numPrefix[i].Exponent()
		j.DenPrefix[i] = u.denPrefix[i].Exponent()
	}
	if u.rootName != "" {
		j.RootName = &u.rootName
		j.RootPluralName = &u.rootPluralName
		j.RootSymbol = &u.rootSymbol
	}
	return json.Marshal(j)
}

// UnmarshalUnitJSON decodes a Unit from its stable JSON form and
// re-interns it, returning the canonical shared instance.
func UnmarshalUnitJSON(data []byte) (*Unit, error) {
	var j unitJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	dimensionality := internDimensionality(j.Dimensionality.Num, j.Dimensionality.Den)

	var numPrefix, denPrefix [numBaseDimensions]Prefix
	for i := 0; i < int(numBaseDimensions); i++ {
		if p, ok := PrefixForExponent(j.NumPrefix[i]); ok {
			numPrefix[i] = p
		}
		if p, ok := PrefixForExponent(j.DenPrefix[i]); ok {
			denPrefix[i] = p
		}
	}
	rootSymbolPrefix, _ := PrefixForExponent(j.RootSymbolPrefix)

	var rootName, rootPlural, rootSymbol string
	if j.RootName != nil {
		rootName = *j.RootName
	}
	if j.RootPluralName != nil {
		rootPlural = *j.RootPluralName
	}
	if j.RootSymbol != nil {
		rootSymbol = *j.RootSymbol
	}

	return internUnit(dimensionality, numPrefix, denPrefix, rootName, rootPlural, rootSymbol, rootSymbolPrefix, j.AllowsSIPrefix, j.IsSpecialSISymbol, j.ScaleToCoherentSI), nil
}
