// Package workflow drives schema generation and refinement.
//
// A [Workflow] composes a request, sends it through a
// schemagen.CompletionProvider, parses and meta-validates the reply and, on
// success, stores it in its [State] together with the integration steps it
// lists. Later refinements send the stored schema back to the model as the
// starting point.
//
//	wf := workflow.New(c)
//	res := wf.Generate(ctx, "Create a user schema with name and email")
//	switch res.Status {
//	case workflow.StatusSuccess:
//	    fmt.Println(res.Schema)
//	case workflow.StatusNeedsClarification:
//	    fmt.Println("missing:", res.MissingFields)
//	case workflow.StatusError:
//	    fmt.Println(res.ErrorKind, res.Message)
//	}
//
//	res = wf.Refine(ctx, `add integration step "Deploy"`)
//
// # Results
//
// Calls never return a Go error. Every outcome is a [Result] tagged by
// [Status]. Error results leave the state untouched. Clarification and
// warning results still store the new schema.
//
// # State
//
// The state is injectable through [WithState]. Both the schema and its steps
// are replaced under one lock, so concurrent readers always see a matching
// pair. Remote calls are not serialized: when two refinements race, the last
// one to finish wins.
package workflow
