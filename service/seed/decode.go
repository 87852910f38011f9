package seed

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(datatypes.Date{})
	timeType    = reflect.TypeOf(time.Time{})
)

// timeLayouts are tried in order for time.Time columns.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

func decimalHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case json.Number:
			return decimal.NewFromString(v.String())
		case string:
			if v == "" {
				return decimal.Zero, nil
			}
			return decimal.NewFromString(v)
		case float64:
			return decimal.NewFromFloat(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		}
		return data, nil
	}
}

func dateHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != dateType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("date %q: want YYYY-MM-DD", s)
		}
		return datatypes.Date(d), nil
	}
}

func timeHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != timeType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
		return nil, fmt.Errorf("time %q: want RFC 3339", s)
	}
}

var rowDecodeHook = mapstructure.ComposeDecodeHookFunc(
	decimalHook(),
	dateHook(),
	timeHook(),
)

// DecodeRow fills out (a pointer to an entity) from one fixture row. Keys
// are the entity's json names; unknown keys are an error.
func DecodeRow(row map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       rowDecodeHook,
		Result:           out,
		TagName:          "json",
		ErrorUnused:      true,
		Squash:           true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(row)
}
