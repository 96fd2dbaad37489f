package expression

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"json-converter/config"
)

const (
	// IdentitySource is the expression returning its input unchanged.
	IdentitySource = "-"

	datumName = "datum"
	argsName  = "args"
)

// Accessor derives a value from one data record.
type Accessor func(record any) (any, error)

// Function is invoked directly, typically with no arguments.
type Function func(args ...any) (any, error)

// Parse compiles source into an Accessor when isAccessor is true and into a
// Function otherwise. ok is false when the source cannot be compiled.
func Parse(source string, cfg *config.Configuration, isAccessor bool) (any, bool) {
	if isAccessor {
		fn, ok := ParseAccessor(source, cfg)
		if !ok {
			return nil, false
		}

		return fn, true
	}

	fn, ok := ParseFunction(source, cfg)
	if !ok {
		return nil, false
	}

	return fn, true
}

// ParseAccessor compiles source into a per-record Accessor.
func ParseAccessor(source string, cfg *config.Configuration) (Accessor, bool) {
	source = strings.TrimSpace(source)
	if source == IdentitySource {
		return func(record any) (any, error) { return record, nil }, true
	}

	program, ok := compile(source)
	if !ok {
		return nil, false
	}

	base := baseEnvironment(cfg)

	return func(record any) (any, error) {
		env := maps.Clone(base)
		if fields, isMap := record.(map[string]any); isMap {
			maps.Copy(env, fields)
		}

		env[datumName] = record

		return expr.Run(program, env)
	}, true
}

// ParseFunction compiles source into a directly invoked Function.
func ParseFunction(source string, cfg *config.Configuration) (Function, bool) {
	source = strings.TrimSpace(source)
	if source == IdentitySource {
		return func(args ...any) (any, error) {
			if len(args) == 0 {
				return nil, nil
			}

			return args[0], nil
		}, true
	}

	program, ok := compile(source)
	if !ok {
		return nil, false
	}

	base := baseEnvironment(cfg)

	return func(args ...any) (any, error) {
		env := maps.Clone(base)
		env[argsName] = args

		return expr.Run(program, env)
	}, true
}

func compile(source string) (*vm.Program, bool) {
	if source == "" {
		return nil, false
	}

	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, false
	}

	return program, true
}

// baseEnvironment snapshots the names an expression may reference.
func baseEnvironment(cfg *config.Configuration) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}

	env := make(map[string]any, len(cfg.Enumerations)+len(cfg.Functions)+2)
	maps.Copy(env, cfg.Enumerations)
	maps.Copy(env, cfg.Functions)

	return env
}
