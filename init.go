package tooltip

// DefaultSelector matches every element that declares tooltip content.
const DefaultSelector = "[" + AttrContent + "]"

// Registry remembers which elements already have a controller, so that
// binding the same page twice is harmless.
type Registry struct {
	env   Env
	bound map[Element]*Controller
}

func NewRegistry(env Env) *Registry {
	return &Registry{
		env:   env,
		bound: make(map[Element]*Controller),
	}
}

// Init injects the stylesheet and binds a controller to every element
// matching selector that is not bound yet. Empty arguments select the
// defaults. It returns the number of newly bound elements.
func (r *Registry) Init(selector, cssURL string, opts ...Option) int {
	InjectCSS(r.env.Document, cssURL)
	if selector == "" {
		selector = DefaultSelector
	}

	n := 0
	for _, el := range r.env.Document.QueryAll(selector) {
		if _, ok := r.bound[el]; ok {
			continue
		}
		r.Bind(el, opts...)
		n++
	}
	return n
}

// Bind attaches a controller to el unless it already has one, and returns
// the controller of el.
func (r *Registry) Bind(el Element, opts ...Option) *Controller {
	if c, ok := r.bound[el]; ok {
		return c
	}
	c := New(r.env, el, opts...)
	r.bound[el] = c
	return c
}

func (r *Registry) Lookup(el Element) (*Controller, bool) {
	c, ok := r.bound[el]
	return c, ok
}

// Unbind destroys the controller of el and forgets el, so a later Init
// binds it again.
func (r *Registry) Unbind(el Element) bool {
	c, ok := r.bound[el]
	if !ok {
		return false
	}
	c.Destroy()
	delete(r.bound, el)
	return true
}

func (r *Registry) Len() int { return len(r.bound) }

var registry *Registry

// Init binds tooltips using a registry shared by the whole program. The
// environment of the first call is kept.
func Init(env Env, selector, cssURL string) *Registry {
	if registry == nil {
		registry = NewRegistry(env)
	}
	registry.Init(selector, cssURL)
	return registry
}
