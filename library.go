package si

import (
	"sort"
	"sync"
)

// library is the process-wide interned Unit registry: three maps over
// the same set of instances, plus a sorted-by-symbol-length array used
// for longest-match lookup during parsing.
type libraryState struct {
	mu sync.RWMutex

	byKey            map[string]*Unit
	byQuantity       map[string][]*Unit
	byDimensionality map[*Dimensionality][]*Unit

	byLengthDesc []*Unit

	// static tracks units installed during population, as opposed to
	// ones registered later (units interned after population, or aliases
	// added by ParseUnit's CacheNonSIResult option). The imperial/US
	// volume family is chosen once, during population; no call swaps it
	// afterwards.
	static map[string]bool

	// populating is true for the duration of populateLibrary's catalog
	// calls, so registerInternedUnit knows to mark everything it interns
	// in that window as static.
	populating bool
}

var (
	lib            = &libraryState{}
	libPopulateOne sync.Once
)

func lookupInternedUnit(key string) (*Unit, bool) {
	ensureLibraryPopulated()
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	u, ok := lib.byKey[key]
	return u, ok
}

func registerInternedUnit(u *Unit) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	registerInternedUnitLocked(u, lib.populating)
}

func registerInternedUnitLocked(u *Unit, static bool) {
	if lib.byKey == nil {
		lib.byKey = map[string]*Unit{}
		lib.byQuantity = map[string][]*Unit{}
		lib.byDimensionality = map[*Dimensionality][]*Unit{}
		lib.static = map[string]bool{}
	}
	if _, exists := lib.byKey[u.key]; exists {
		return
	}
	lib.byKey[u.key] = u
	lib.byDimensionality[u.dimensionality] = append(lib.byDimensionality[u.dimensionality], u)
	lib.byLengthDesc = append(lib.byLengthDesc, u)
	sort.SliceStable(lib.byLengthDesc, func(i, j int) bool {
		return len(lib.byLengthDesc[i].symbol) > len(lib.byLengthDesc[j].symbol)
	})
	if static {
		lib.static[u.key] = true
	}
}

func unitsForReducedDimensionality(d *Dimensionality) []*Unit {
	ensureLibraryPopulated()
	reduced := ReduceDimensionality(d)
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return append([]*Unit(nil), lib.byDimensionality[reduced]...)
}

// LookupUnit returns the interned unit registered under the given
// canonical key, populating the library on first call.
func LookupUnit(key string) (*Unit, bool) {
	return lookupInternedUnit(key)
}

// UnitsForQuantity returns the library's units registered for a
// predefined quantity name, in registration order.
func UnitsForQuantity(name string) []*Unit {
	ensureLibraryPopulated()
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return append([]*Unit(nil), lib.byQuantity[name]...)
}

// RegisterUnitForQuantity associates u with a quantity name for
// UnitsForQuantity lookups; used by library population and by callers
// extending the catalog.
func RegisterUnitForQuantity(name string, u *Unit) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.byQuantity[name] = append(lib.byQuantity[name], u)
}

// LibraryOption configures library population.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	imperialVolume *bool
}

// WithImperialVolume forces the default "volume" family: true installs
// imperial gal/qt/pt/cup under the unlabeled symbols (…US becomes the
// labeled alias); false does the reverse. Omitting this option falls
// back to locale detection.
func WithImperialVolume(imperial bool) LibraryOption {
	return func(o *libraryOptions) { o.imperialVolume = &imperial }
}

// ensureLibraryPopulated performs the one-shot, leaves-first population
// described by the spec: coherent SI base, special SI, prefixed
// variants, non-SI units, convenience combinations, then the
// locale-selected volume family.
func ensureLibraryPopulated() {
	lib.mu.RLock()
	populating := lib.populating
	lib.mu.RUnlock()
	if populating {
		// populateLibrary interns units through lookups that land here;
		// sync.Once.Do is not reentrant, so those nested calls return.
		return
	}
	libPopulateOne.Do(func() {
		populateLibrary(nil)
	})
}

// PopulateLibrary forces population (if not already done) with explicit
// options; intended for tests that need a specific volume family without
// depending on host locale.
func PopulateLibrary(opts ...LibraryOption) {
	libPopulateOne.Do(func() {
		populateLibrary(opts)
	})
}

func populateLibrary(opts []LibraryOption) {
	o := &libraryOptions{}
	for _, opt := range opts {
		opt(o)
	}

	setPopulating(true)
	defer setPopulating(false)

	registerCoherentSIBaseUnits()
	registerPrefixedBaseVariants()
	registerSpecialSIUnits()
	registerPrefixedVariants()
	registerNonSIUnits()
	registerConvenienceCombinations()

	imperial := o.imperialVolume
	if imperial == nil {
		v := localeDefaultIsImperialVolume()
		imperial = &v
	}
	registerVolumeFamily(*imperial)
}

func setPopulating(v bool) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.populating = v
}

// ReleaseLibrary drops every unit's static-instance flag and releases the
// top-level containers, matching the spec's "one-shot init, one-shot
// shutdown" lifecycle. Intended for tests; not required in normal
// process lifetime.
func ReleaseLibrary() {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.byKey = nil
	lib.byQuantity = nil
	lib.byDimensionality = nil
	lib.byLengthDesc = nil
	lib.static = nil
	lib.populating = false
	libPopulateOne = sync.Once{}
}

// RemoveUnit drops a single unit from the key and length-sorted indexes.
// It does not affect other interned references already held by callers.
func RemoveUnit(key string) {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	u, ok := lib.byKey[key]
	if !ok {
		return
	}
	delete(lib.byKey, key)
	delete(lib.static, key)
	for i, v := range lib.byLengthDesc {
		if v == u {
			lib.byLengthDesc = append(lib.byLengthDesc[:i], lib.byLengthDesc[i+1:]...)
			break
		}
	}
	list := lib.byDimensionality[u.dimensionality]
	for i, v := range list {
		if v == u {
			lib.byDimensionality[u.dimensionality] = append(list[:i], list[i+1:]...)
			break
		}
	}
}
