package uuidudf

// Functions returns fresh instances of every function in this module, in a
// stable order.
func Functions() []ScalarFunction {
	return []ScalarFunction{
		NewStringToUUID(),
		NewUUIDToString(),
		NewUUIDVersion(),
	}
}

// Names returns the registered function names in the order of Functions.
func Names() []string {
	return []string{StringToUUIDName, UUIDToStringName, UUIDVersionName}
}

// ByName returns a function by its stable name.
func ByName(name string) (ScalarFunction, bool) {
	switch name {
	case StringToUUIDName:
		return NewStringToUUID(), true
	case UUIDToStringName:
		return NewUUIDToString(), true
	case UUIDVersionName:
		return NewUUIDVersion(), true
	default:
		return nil, false
	}
}
