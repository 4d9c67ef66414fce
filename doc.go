// Package schemagen turns natural-language prompts into JSON Schema documents
// using a remote chat-completion model.
//
// The root package holds the types shared by every layer: the outbound [Request],
// the raw [Response], the [CompletionProvider] contract and the error taxonomy
// ([APIError], [TransportError], [ErrorKind]).
//
// The pieces are assembled by the [github.com/spetersoncode/schemagen/workflow]
// package, which keeps the current schema and its integration steps and drives the
// generate and refine cycle:
//
//	c, err := client.New(client.Config{
//	    Provider: schemagen.ProviderOpenAI,
//	    APIKey:   os.Getenv("SCHEMAGEN_API_KEY"),
//	    BaseURL:  os.Getenv("SCHEMAGEN_BASE_URL"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wf := workflow.New(c)
//	res := wf.Generate(ctx, "Create a user schema with name and email")
//	if res.IsError() {
//	    log.Fatal(res.Message)
//	}
//	fmt.Println(res.Schema)
//
// Follow-up prompts passed to [workflow.Workflow.Refine] modify the stored schema
// instead of starting over.
//
// # Error Handling
//
// Every failure is a value. Providers report remote non-success statuses as
// [*APIError] and everything below the API level as [*TransportError]; use
// [KindOf] to classify:
//
//	switch schemagen.KindOf(err) {
//	case schemagen.ErrorAPI:
//	    // remote service rejected the request
//	case schemagen.ErrorTransport:
//	    // timeout, connection failure or malformed reply
//	}
package schemagen
