package deck

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"json-converter/config"
	"json-converter/hydrate"
	"json-converter/internal/diagnostic"
	"json-converter/internal/match"
)

const maxSuggestions = 3

// Converter converts successive versions of a document. It only moves the
// current view state when the document's initialViewState actually changes.
// A Converter is safe for concurrent use.
type Converter struct {
	conv *hydrate.Converter

	mu               sync.Mutex
	initialViewState any
}

// NewConverter validates cfg and returns a Converter. Use Configuration to
// include the default view classes and enumerations.
func NewConverter(cfg *config.Configuration, opts ...hydrate.Option) (*Converter, error) {
	conv, err := hydrate.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Converter{conv: conv}, nil
}

// Convert hydrates doc and post-processes its top-level props: when
// initialViewState differs (by deep equality) from the one seen last, or the
// last one was falsy, it becomes viewState; initialViewState itself is
// always removed.
func (c *Converter) Convert(doc any) (map[string]any, *hydrate.Diagnostics, error) {
	out, diags := c.conv.Convert(doc)

	props, ok := out.(map[string]any)
	if !ok {
		return nil, diags, ErrRootNotObject
	}

	c.updateViewState(props)
	normalizeMapProps(props)

	return props, diags, nil
}

// CachedExpressions reports the size of the expression cache, if any.
func (c *Converter) CachedExpressions() int {
	return c.conv.CachedExpressions()
}

// Reset forgets the remembered initialViewState.
func (c *Converter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.initialViewState = nil
}

func (c *Converter) updateViewState(props map[string]any) {
	initial, ok := props[PropInitialViewState]
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !hydrate.Truthy(c.initialViewState) || !reflect.DeepEqual(initial, c.initialViewState) {
		props[PropViewState] = initial
		c.initialViewState = initial
	}

	delete(props, PropInitialViewState)
}

// Layers converts layer declarations against the configuration's classes.
// Unlike Convert, declarations are not walked recursively: each layer's props
// go straight through property resolution. Unknown types, non-object entries
// and failed constructors yield hydrate.Unresolved and a warning.
func (c *Converter) Layers(jsonLayers []any) ([]any, *hydrate.Diagnostics) {
	return layers(jsonLayers, c.conv.Configuration())
}

// Layers is the stateless form of Converter.Layers. The only possible error
// is an invalid configuration.
func Layers(jsonLayers []any, cfg *config.Configuration) ([]any, *hydrate.Diagnostics, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	out, diags := layers(jsonLayers, cfg)

	return out, diags, nil
}

func layers(jsonLayers []any, cfg *config.Configuration) ([]any, *hydrate.Diagnostics) {
	l := &layerPass{
		cfg:     cfg,
		log:     cfg.LoggerOrDefault(),
		typeKey: cfg.TypeKeyOrDefault(),
		diags:   &diagnostic.Diagnostics{Pass: uuid.NewString()},
	}

	out := make([]any, len(jsonLayers))
	for i, jsonLayer := range jsonLayers {
		out[i] = l.layer(jsonLayer, "["+strconv.Itoa(i)+"]")
	}

	return out, l.diags
}

type layerPass struct {
	cfg     *config.Configuration
	log     config.Logger
	typeKey string
	diags   *diagnostic.Diagnostics
}

func (l *layerPass) layer(jsonLayer any, path string) any {
	obj, ok := jsonLayer.(map[string]any)
	if !ok {
		l.warn(diagnostic.CodeInvalidLayer, "", path, fmt.Sprintf("layer is a %T, not an object", jsonLayer))
		return hydrate.Unresolved{}
	}

	name, _ := obj[l.typeKey].(string)

	class, ok := l.cfg.Lookup(name)
	if !ok {
		l.warn(diagnostic.CodeUnknownClass, name, path, fmt.Sprintf("no registered layer of type %s", name),
			match.Suggest(name, l.cfg.ClassNames(), maxSuggestions)...)

		return hydrate.Unresolved{Type: name}
	}

	props := make(map[string]any, len(obj))
	for k, v := range obj {
		if k != l.typeKey {
			props[k] = v
		}
	}

	instance, err := class.New(hydrate.ResolveProperties(class.Schema, props, l.cfg))
	if err != nil {
		l.warn(diagnostic.CodeConstructorFailed, name, path, err.Error())
		return hydrate.Unresolved{Type: name}
	}

	return instance
}

func (l *layerPass) warn(code, class, path, msg string, suggestions ...string) {
	l.log.Warn("JSON converter: "+msg, "type", class, "path", path, "pass", l.diags.Pass, "suggestions", suggestions)
	l.diags.AddWarning(code, msg, class, path, suggestions...)
}
