package dto

import "gorm.io/datatypes"

// ToJSONSlice приводит срез к jsonb-представлению, nil превращая в []
func ToJSONSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		values = []string{}
	}
	return datatypes.JSONSlice[string](values)
}
