// Package mailtap provides ad-hoc developer utilities for manually
// exercising a local mail server and debugging webhook deliveries.
//
// Two independent commands are provided:
//
//	mailtap mail:test        - send a fixed sequence of multipart test
//	                           emails (one with an attachment) over a
//	                           plaintext SMTP connection, default
//	                           localhost:2525
//	mailtap webhook:listen   - run an HTTP endpoint (default port 3009)
//	                           that echoes any posted JSON payload to
//	                           the console and acknowledges with a
//	                           canned JSON response
//
// Key subpackages:
//
//	github.com/pixelvide/mailtap/pkg/mail     - Message model, SMTP and log mailers
//	github.com/pixelvide/mailtap/pkg/probe    - Fixed test-email sequence
//	github.com/pixelvide/mailtap/pkg/webhook  - Webhook debug server
//	github.com/pixelvide/mailtap/pkg/config   - Configuration structs and env loader
//
// Neither command keeps any state: each email is built, sent over one
// blocking connection, and discarded; each webhook request is handled
// fully before the next one is accepted.
package mailtap
