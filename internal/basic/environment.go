package basic

// Environment maps variable names to their integer values. A variable exists
// from its first assignment until the environment is cleared.
type Environment struct {
	values map[string]int64
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]int64)}
}

func (env *Environment) Set(name string, value int64) {
	env.values[name] = value
}

func (env *Environment) Get(name string) (int64, error) {
	if value, ok := env.values[name]; ok {
		return value, nil
	}
	return 0, NewError(UndefinedVariable)
}

func (env *Environment) IsDefined(name string) bool {
	_, ok := env.values[name]
	return ok
}

func (env *Environment) Len() int {
	return len(env.values)
}

func (env *Environment) Clear() {
	env.values = make(map[string]int64)
}
