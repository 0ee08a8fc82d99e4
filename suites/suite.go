package suites

// Function is a single named unit of generated Python source, either a
// function or a test function. Immutable once created.
type Function struct {
	Name    string
	Content string
}

// Suite pairs a generated function with the test generated for it. The
// test is assumed, not verified, to exercise the function.
type Suite struct {
	Function *Function
	Test     *Function
}

// Script is one output module plus its test file. It grows by appending
// suites and never removes one.
type Script struct {
	ModuleName string
	Suites     []*Suite
}

func (s *Script) Append(suite *Suite) {
	s.Suites = append(s.Suites, suite)
}
