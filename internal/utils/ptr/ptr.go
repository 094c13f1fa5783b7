package ptr

// ToString returns a pointer to the given string.
func ToString(v string) *string {
	return &v
}

// ToInt returns a pointer to the given int.
func ToInt(v int) *int {
	return &v
}

// ToUint returns a pointer to the given uint.
func ToUint(v uint) *uint {
	return &v
}

// ToBool returns a pointer to the given bool.
func ToBool(v bool) *bool {
	return &v
}

// ToFloat64 returns a pointer to the given float64.
func ToFloat64(v float64) *float64 {
	return &v
}
