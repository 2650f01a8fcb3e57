package problem

// HasExtension reports whether the extension member key is set.
func (p *Problem) HasExtension(key string) bool {
	_, ok := p.extensions[key]
	return ok
}

// Extension returns the extension member stored under key. It fails with
// ErrKeyNotFound when the key is not set; absence is never masked by a
// default value.
func (p *Problem) Extension(key string) (any, error) {
	v, ok := p.extensions[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// SetExtension inserts or overwrites the extension member key and returns
// the receiver for chaining. A key colliding with one of the fixed field
// names is kept, but the fixed field wins when the problem is compiled.
func (p *Problem) SetExtension(key string, value any) *Problem {
	if p.extensions == nil {
		p.extensions = make(map[string]any)
	}
	p.extensions[key] = value
	return p
}

// RemoveExtension removes the extension member key. Removing an absent key
// is a no-op.
func (p *Problem) RemoveExtension(key string) *Problem {
	delete(p.extensions, key)
	return p
}
