package widerror

// Option configures an Error during construction via E().
type Option func(*Error)

// WithName sets the stable symbolic identifier.
func WithName(name string) Option { return func(e *Error) { e.name = name } }

// WithNamespace sets the namespace/sub-code pair and recomputes the code
// from it, overriding the code passed to E. This is the only way an
// option can touch the code, which keeps the pair and the code in step.
func WithNamespace(namespace uint32, sub uint16) Option {
	return func(e *Error) {
		e.namespace = namespace
		e.subCode = sub
		e.code = MakeCode(namespace, sub)
	}
}

// WithKind sets the canonical failure category.
func WithKind(k Kind) Option { return func(e *Error) { e.kind = k } }

// WithScope sets where along the request path the error originated.
func WithScope(s Scope) Option { return func(e *Error) { e.scope = s } }

// WithLevel sets the caller-defined severity ordinal.
func WithLevel(level uint8) Option { return func(e *Error) { e.level = level } }

// WithRetryMode sets the advisory retry policy.
func WithRetryMode(m RetryMode) Option { return func(e *Error) { e.retryMode = m } }

// WithPassThroughMode sets the advisory forwarding policy.
func WithPassThroughMode(m PassThroughMode) Option {
	return func(e *Error) { e.passThroughMode = m }
}

// WithMappingCode sets the external-system code mapping.
func WithMappingCode(code int64) Option {
	return func(e *Error) { e.mappingCode = &code }
}

// WithCause sets the cause record to be returned by Unwrap(). It goes
// through the same one-shot guarded attachment as WithSource, so applying
// it to a record that already has a cause cannot swap or clear it.
func WithCause(cause *Error) Option { return func(e *Error) { e.WithSource(cause) } }

// E is a builder around New for when several classification fields are
// set at once.
//
//	e := widerror.E(200010003, widerror.I18nMessage("order.not_found"),
//	    widerror.WithName("order_not_found"),
//	    widerror.WithKind(widerror.KindNotFound),
//	    widerror.WithScope(widerror.ScopeServerside),
//	    widerror.WithRetryMode(widerror.RetryDenied),
//	)
func E(code uint32, msg Message, opts ...Option) *Error {
	e := New(code, msg)
	for _, o := range opts {
		o(e)
	}

	return e
}
