package procs

// Proc is one resumable step. Run does a bounded amount of work and
// returns the continuation, or nil when there is nothing left.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

// Func adapts a plain function into a Proc.
type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}
