package schemarules

import "reflect"

var floatType = reflect.TypeOf(float64(0))

// toFloat normalizes a comparand to float64. Pointers are dereferenced;
// fractional values are preserved. Nil values, strings, bools, and anything
// else not convertible to float64 report false.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() || !rv.Type().ConvertibleTo(floatType) {
		return 0, false
	}
	return rv.Convert(floatType).Float(), true
}
