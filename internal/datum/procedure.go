package datum

// Evaluator is the minimal capability a builtin needs to evaluate a
// sub-form against an environment. It is satisfied by internal/eval's
// *eval.Evaluator without this package importing eval, breaking what
// would otherwise be a circular import between value universe and
// evaluator (the same dependency-inversion the teacher uses to let
// runtime.Environment.NewEnclosed hand back an environment without
// importing its evaluator package).
type Evaluator interface {
	Evaluate(form Datum, env *Environment) (Datum, error)
	Apply(proc *Procedure, args Datum, env *Environment) (Datum, error)
}

// BuiltinFunc is the call contract for a built-in procedure: it receives
// the raw (unevaluated) argument list and decides for itself whether and
// how to evaluate it, which is what makes special operators possible.
type BuiltinFunc func(args Datum, env *Environment, ev Evaluator) (Datum, error)

// Procedure is either a built-in (Builtin set) or a user-defined
// procedure (Params/Body/DefEnv set). Exactly one of the two shapes is
// populated for any given instance.
type Procedure struct {
	Name string

	// Builtin is non-nil for built-in procedures.
	Builtin BuiltinFunc

	// Params, Body and DefEnv are set for user-defined procedures. Params
	// is NIL or a proper list of Symbol; Body is a non-empty proper list
	// of body expressions.
	Params Datum
	Body   Datum
	DefEnv *Environment
}

func (*Procedure) Kind() Kind { return KindProcedure }

func (p *Procedure) String() string {
	name := p.Name
	if name == "" {
		name = "LAMBDA"
	}
	return "#<FUNCTION " + name + ">"
}

func (p *Procedure) Display() string { return p.String() }

// IsBuiltin reports whether p is a built-in procedure.
func (p *Procedure) IsBuiltin() bool { return p.Builtin != nil }

// NewBuiltin constructs a built-in procedure descriptor.
func NewBuiltin(name string, fn BuiltinFunc) *Procedure {
	return &Procedure{Name: name, Builtin: fn}
}

// NewUserDefined constructs a user-defined procedure descriptor, capturing
// defEnv as its lexical closure environment.
func NewUserDefined(name string, params, body Datum, defEnv *Environment) *Procedure {
	return &Procedure{Name: name, Params: params, Body: body, DefEnv: defEnv}
}
