package hydrate

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"json-converter/config"
	"json-converter/expression"
	"json-converter/internal/diagnostic"
	"json-converter/internal/match"
)

const (
	// diagnosticPropsLen bounds the props rendering in unknown-class warnings.
	diagnosticPropsLen = 40

	maxSuggestions = 3
)

// Diagnostics is the report of one conversion pass.
type Diagnostics = diagnostic.Diagnostics

// Converter hydrates JSON trees against one validated Configuration.
// It is safe for concurrent use; every call gets its own pass state.
type Converter struct {
	cfg   *config.Configuration
	cache *expression.Cache
}

// Option configures a Converter.
type Option func(*Converter)

// WithExpressionCache makes the Converter reuse compiled expressions across
// Convert calls. Useful when the same document is converted repeatedly.
func WithExpressionCache() Option {
	return func(c *Converter) {
		c.cache = expression.NewCache(c.cfg)
	}
}

// New validates cfg and returns a Converter bound to it. The configuration
// must not be modified while the Converter is in use.
func New(cfg *config.Configuration, opts ...Option) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Converter{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// CachedExpressions returns the number of expressions held by the
// Converter's cache, or zero without WithExpressionCache.
func (c *Converter) CachedExpressions() int {
	if c.cache == nil {
		return 0
	}

	return c.cache.Len()
}

// Configuration returns the configuration the Converter was built with.
func (c *Converter) Configuration() *config.Configuration {
	return c.cfg
}

// Convert hydrates doc and returns the result together with the pass's
// diagnostics. The input is never modified.
func (c *Converter) Convert(doc any) (any, *Diagnostics) {
	parse := parserFor(c.cfg)
	if c.cache != nil {
		parse = c.cache.Parse
	}

	p := &pass{
		cfg:     c.cfg,
		parse:   parse,
		log:     c.cfg.LoggerOrDefault(),
		typeKey: c.cfg.TypeKeyOrDefault(),
		diags:   &diagnostic.Diagnostics{Pass: uuid.NewString()},
	}

	return p.convert(doc, ""), p.diags
}

// Convert validates cfg and hydrates doc. The only possible error is an
// invalid configuration.
func Convert(doc any, cfg *config.Configuration) (any, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}

	out, _ := c.Convert(doc)

	return out, nil
}

// pass holds the state of one Convert call.
type pass struct {
	cfg     *config.Configuration
	parse   parseFunc
	log     config.Logger
	typeKey string
	diags   *diagnostic.Diagnostics
}

func (p *pass) convert(node any, path string) any {
	switch v := node.(type) {
	case []any:
		out := make([]any, len(v))
		for i, element := range v {
			out[i] = p.convert(element, indexPath(path, i))
		}

		return out

	case map[string]any:
		// the type key wins over plain-object handling, even for unknown classes
		if typeValue, ok := v[p.typeKey]; ok && Truthy(typeValue) {
			return p.convertClassInstance(v, typeName(typeValue), path)
		}

		return p.convertPlainObject(v, path)

	case string:
		return p.convertString(v)

	default:
		return node
	}
}

func (p *pass) convertClassInstance(obj map[string]any, name, path string) any {
	props := make(map[string]any, len(obj))
	for k, v := range obj {
		if k != p.typeKey {
			props[k] = v
		}
	}

	class, ok := p.cfg.Lookup(name)
	if !ok {
		p.warnUnknownClass(name, props, path)
		return Unresolved{Type: name}
	}

	converted := p.convertPlainObject(props, path)
	resolved := resolveProperties(class.Schema, converted, p.parse, func(prop, source string, kind config.Kind) {
		p.diags.AddInfo(diagnostic.CodeInvalidExpression,
			fmt.Sprintf("dropped %s %q: expression does not compile", kind, source),
			name, childPath(path, prop))
	})

	instance, err := class.New(resolved)
	if err != nil {
		msg := fmt.Sprintf("JSON converter: class %s failed to construct: %v", name, err)
		p.log.Warn(msg, "type", name, "path", path, "pass", p.diags.Pass)
		p.diags.AddWarning(diagnostic.CodeConstructorFailed, err.Error(), name, path)

		return Unresolved{Type: name}
	}

	return instance
}

func (p *pass) convertPlainObject(obj map[string]any, path string) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = p.convert(v, childPath(path, k))
	}

	return out
}

// convertString is the hook for string hydration. Without a type hint there
// is nothing to resolve, and enumeration names are deliberately left alone.
func (p *pass) convertString(s string) any {
	return s
}

func (p *pass) warnUnknownClass(name string, props map[string]any, path string) {
	suggestions := match.Suggest(name, p.cfg.ClassNames(), maxSuggestions)

	msg := fmt.Sprintf("JSON converter: No registered class of type %s(%s...)", name, truncatedJSON(props))
	p.log.Warn(msg, "type", name, "path", path, "pass", p.diags.Pass, "suggestions", suggestions)
	p.diags.AddWarning(diagnostic.CodeUnknownClass,
		fmt.Sprintf("no registered class of type %s", name), name, path, suggestions...)
}

// typeName coerces a type-key value to a registry key.
func typeName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// truncatedJSON renders v compactly and keeps the first diagnosticPropsLen runes.
func truncatedJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte(fmt.Sprint(v))
	}

	runes := []rune(string(data))
	if len(runes) > diagnosticPropsLen {
		runes = runes[:diagnosticPropsLen]
	}

	return string(runes)
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
