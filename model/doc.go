// Package model lists the chat models schemagen knows about.
//
// The [Available] catalog mirrors the models exposed by the default
// OpenAI-compatible endpoint; [Default] is used when no model is configured.
// Models outside the catalog can still be used by passing their identifier
// to the prompt composer or through [New].
package model
