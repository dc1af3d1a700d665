package styl

// Package-level functions delegate to Default().

// Style compiles r on the default engine. See Engine.Style.
func Style(r any) (string, error) { return Default().Style(r) }

// MustStyle is Style that panics on error.
func MustStyle(r any) string { return Default().MustStyle(r) }

// StyleVariants compiles one style per key on the default engine.
func StyleVariants(data map[string]any, mapper func(key string, value any) any) (map[string]string, error) {
	return Default().StyleVariants(data, mapper)
}

// GlobalStyle compiles r under selector on the default engine.
func GlobalStyle(selector string, r any) error { return Default().GlobalStyle(selector, r) }

// Keyframes compiles kf on the default engine.
func Keyframes(kf any) (string, error) { return Default().Keyframes(kf) }

// CreateVar allocates a variable on the default engine.
func CreateVar(debugName string) string { return Default().CreateVar(debugName) }

// CreateContainer allocates a container name on the default engine.
func CreateContainer(debugName string) string { return Default().CreateContainer(debugName) }

// CreateThemeContract allocates a contract on the default engine.
func CreateThemeContract(t Tokens) Tokens { return Default().CreateThemeContract(t) }

// CreateGlobalTheme creates a global theme on the default engine.
func CreateGlobalTheme(selector string, t Tokens) (Tokens, error) {
	return Default().CreateGlobalTheme(selector, t)
}

// CreateGlobalThemeFromContract assigns a contract under selector on the default engine.
func CreateGlobalThemeFromContract(selector string, contract, values Tokens) error {
	return Default().CreateGlobalThemeFromContract(selector, contract, values)
}

// CreateTheme creates a theme class on the default engine.
func CreateTheme(t Tokens) (string, Tokens, error) { return Default().CreateTheme(t) }

// CreateThemeFromContract creates a theme class for a contract on the default engine.
func CreateThemeFromContract(contract, values Tokens) (string, error) {
	return Default().CreateThemeFromContract(contract, values)
}

// Extract returns and resets the default engine's CSS.
func Extract() string { return Default().Extract() }

// Flush writes batched text on the default engine.
func Flush() { Default().Flush() }

// EnterFileScope starts a file scope on the default engine.
func EnterFileScope(hash, name string) { Default().EnterFileScope(hash, name) }

// LeaveFileScope ends the innermost file scope on the default engine.
func LeaveFileScope() { Default().LeaveFileScope() }

// EnterDebug turns on readable identifiers on the default engine.
func EnterDebug() { Default().EnterDebug() }
