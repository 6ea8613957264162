package sqlbind

import (
	"database/sql/driver"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// M is an associative list of parameters. Keys are rendered in sorted order.
//
//	sqlbind.Render("UPDATE users SET ?a WHERE id = ?d", sqlbind.M{"name": "Jack", "age": 30}, 1)
//	// UPDATE users SET `age` = 30, `name` = 'Jack' WHERE id = 1
type M map[string]interface{}

// S is a sequential list of parameters.
type S []interface{}

// TimeLayout is the layout time.Time parameters are formatted with.
const TimeLayout = "2006-01-02 15:04:05.000000"

/*
ValueOf converts a Go value to a Value.

	nil, nil pointers              null
	bool                           bool
	signed and unsigned integers   int
	float32, float64               float
	string, []byte                 text
	time.Time                      text, formatted with TimeLayout
	driver.Valuer                  the converted result of Value()
	slices, arrays, S              sequential list
	[]Pair                         associative list in the given order
	maps with string keys, M       associative list sorted by key
	Value                          itself

Named types are converted according to their underlying kind.
*/
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Value:
		if v == nil {
			return Null(), nil
		}
		return *v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return Text(v), nil
	case []byte:
		return Text(string(v)), nil
	case time.Time:
		return Text(v.Format(TimeLayout)), nil
	case []Value:
		return List(v...), nil
	case []Pair:
		return Assoc(v...), nil
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return Value{}, errors.Wrapf(ErrInvalidValue, "%T: %v", x, err)
		}
		if _, ok := dv.(driver.Valuer); ok {
			return Value{}, errors.Wrapf(ErrInvalidValue, "%T returned a driver.Valuer", x)
		}
		return ValueOf(dv)
	}
	return valueOfReflect(reflect.ValueOf(x))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, errors.Wrapf(ErrInvalidValue, "%d overflows int64", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Text(string(rv.Bytes())), nil
		}
		items := make([]Value, rv.Len())
		for n := range items {
			item, err := ValueOf(rv.Index(n).Interface())
			if err != nil {
				return Value{}, errors.WithMessagef(err, "element %d", n)
			}
			items[n] = item
		}
		return Value{kind: KindList, items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, errors.Wrapf(ErrInvalidValue, "%s: map keys must be strings", rv.Type())
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		pairs := make([]Pair, len(keys))
		for n, key := range keys {
			item, err := ValueOf(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return Value{}, errors.WithMessagef(err, "key %q", key)
			}
			pairs[n] = Pair{Key: key, Value: item}
		}
		return Assoc(pairs...), nil
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	return Value{}, errors.Wrapf(ErrInvalidValue, "unsupported type %s", rv.Type())
}

// valuesOf converts render parameters.
func valuesOf(params []interface{}) ([]Value, error) {
	values := make([]Value, len(params))
	for n, p := range params {
		v, err := ValueOf(p)
		if err != nil {
			return nil, errors.WithMessagef(err, "parameter %d", n)
		}
		values[n] = v
	}
	return values, nil
}
