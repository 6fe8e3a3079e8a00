package validator

// FieldEquals applies when the string form of field equals want.
func FieldEquals(field, want string) Gate {
	return func(all Values) bool {
		s, ok := stringValue(all.Get(field))
		return ok && s == want
	}
}

// FieldNotEmpty applies when field holds a non-empty value.
func FieldNotEmpty(field string) Gate {
	return func(all Values) bool {
		return !IsEmpty(all.Get(field))
	}
}

// AnyOf applies when at least one gate applies.
func AnyOf(gates ...Gate) Gate {
	return func(all Values) bool {
		for _, g := range gates {
			if g != nil && g(all) {
				return true
			}
		}
		return false
	}
}

// Not inverts a gate. A nil gate always applies, so Not(nil) never does.
func Not(gate Gate) Gate {
	return func(all Values) bool {
		return gate != nil && !gate(all)
	}
}
