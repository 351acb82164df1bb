package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = make(map[string]IntentType, intentCount)
	for i := IntentNone; i < intentCount; i++ {
		actionRegistry[i.String()] = i
	}
}

// ActionIntent resolves an action name, "none" unbinds a key
func ActionIntent(name string) (IntentType, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}

// ActionNames lists every bindable action in declaration order
func ActionNames() []string {
	names := make([]string, 0, intentCount)
	for i := IntentNone; i < intentCount; i++ {
		names = append(names, i.String())
	}
	return names
}
