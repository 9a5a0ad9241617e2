package primemap

type options struct {
	hashFunc HashFunc
}

type Option func(o *options)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		o.hashFunc = f
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = MakeDefaultHashFunc()
	}

	return o
}
