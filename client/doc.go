// Package client sends composed schema requests to a chat-completion backend.
//
// The backend is chosen by [Config.Provider]: the OpenAI-compatible
// endpoint (default), Anthropic, or Google Gemini.
//
//	c, err := client.New(client.Config{
//	    APIKey:  os.Getenv("SCHEMAGEN_API_KEY"),
//	    BaseURL: os.Getenv("SCHEMAGEN_BASE_URL"),
//	})
//	if err != nil {
//	    return err
//	}
//	resp, err := c.Complete(ctx, req)
//
// Every request runs under a fixed timeout ([DefaultTimeout] unless
// configured) and is sent exactly once.
//
// # Errors
//
// Remote non-success statuses surface as *schemagen.APIError. Timeouts,
// connection failures, undecodable replies and backend panics surface as
// *schemagen.TransportError.
//
// # Events
//
// Set [Config.Events] to observe requests:
//
//	events := make(chan client.Event, 16)
//	c, _ := client.New(client.Config{APIKey: key, Events: events})
//	go func() {
//	    for e := range events {
//	        log.Printf("%s %s %v", e.Type, e.Model, e.Duration)
//	    }
//	}()
package client
