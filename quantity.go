package si

import "sync"

var (
	quantityOnce           sync.Once
	quantityDimensionality map[string]*Dimensionality
)

func dimWithDenominator(num []baseDimension, den []baseDimension) *Dimensionality {
	var n, d [numBaseDimensions]int8
	for _, b := range num {
		n[b]++
	}
	for _, b := range den {
		d[b]++
	}
	return internDimensionality(n, d)
}

// ensureQuantitiesPopulated lazily builds the quantity-name registry the
// first time a quantity lookup is requested.
func ensureQuantitiesPopulated() {
	quantityOnce.Do(func() {
		quantityDimensionality = make(map[string]*Dimensionality, 64)

		reg := func(name string, num, den []baseDimension) {
			quantityDimensionality[name] = dimWithDenominator(num, den)
		}

		L := dimLength
		M := dimMass
		T := dimTime
		I := dimCurrent
		K := dimTemperature
		N := dimAmount
		J := dimLuminousIntensity

		reg("dimensionless", nil, nil)
		reg("length", []baseDimension{L}, nil)
		reg("mass", []baseDimension{M}, nil)
		reg("time", []baseDimension{T}, nil)
		reg("current", []baseDimension{I}, nil)
		reg("temperature", []baseDimension{K}, nil)
		reg("amount", []baseDimension{N}, nil)
		reg("luminousintensity", []baseDimension{J}, nil)

		reg("area", []baseDimension{L, L}, nil)
		reg("volume", []baseDimension{L, L, L}, nil)
		reg("velocity", []baseDimension{L}, []baseDimension{T})
		reg("speed", []baseDimension{L}, []baseDimension{T})
		reg("acceleration", []baseDimension{L}, []baseDimension{T, T})
		reg("force", []baseDimension{M, L}, []baseDimension{T, T})
		reg("pressure", []baseDimension{M}, []baseDimension{L, T, T})
		reg("pressuregradient", []baseDimension{M}, []baseDimension{L, L, T, T})
		reg("energy", []baseDimension{M, L, L}, []baseDimension{T, T})
		reg("power", []baseDimension{M, L, L}, []baseDimension{T, T, T})
		reg("frequency", nil, []baseDimension{T})
		reg("charge", []baseDimension{I, T}, nil)
		reg("voltage", []baseDimension{M, L, L}, []baseDimension{T, T, T, I})
		reg("resistance", []baseDimension{M, L, L}, []baseDimension{T, T, T, I, I})
		reg("capacitance", []baseDimension{T, T, T, T, I, I}, []baseDimension{M, L, L})
		reg("inductance", []baseDimension{M, L, L}, []baseDimension{T, T, I, I})
		reg("magneticfluxdensity", []baseDimension{M}, []baseDimension{T, T, I})
		reg("magneticflux", []baseDimension{M, L, L}, []baseDimension{T, T, I})
		reg("catalyticactivity", []baseDimension{N}, []baseDimension{T})
		reg("density", []baseDimension{M}, []baseDimension{L, L, L})
		reg("volumetricflowrate", []baseDimension{L, L, L}, []baseDimension{T})
		reg("lengthpervolume", []baseDimension{L}, []baseDimension{L, L, L})
		reg("inversevolume", nil, []baseDimension{L, L, L})
		reg("inversemass", nil, []baseDimension{M})
		reg("inversetime", nil, []baseDimension{T})
		reg("wavenumber", nil, []baseDimension{L})
		reg("lengthratio", []baseDimension{L}, []baseDimension{L})
		reg("torque", []baseDimension{M, L, L}, []baseDimension{T, T})
		reg("angularvelocity", nil, []baseDimension{T})
		reg("gyromagneticratio", []baseDimension{I, T}, []baseDimension{M})
		reg("molarmass", []baseDimension{M}, []baseDimension{N})
		reg("luminousflux", []baseDimension{J}, nil)
		reg("illuminance", []baseDimension{J}, []baseDimension{L, L})
		reg("magneticmoment", []baseDimension{I, L, L}, nil)
	})
}
