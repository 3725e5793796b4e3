// Package accountkit provides an HTTP client for the Collab.Land AccountKit
// API: smart-account and transaction operations across EVM and Solana chains.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes the two
// versions of the remote API as independent sub-clients. V1 authenticates
// every call with a Telegram bot token; V2 authenticates with an OAuth-style
// platform access token. The API key supplied at construction is attached to
// every request of either version.
//
// # Basic Usage
//
//	c, err := accountkit.New("my-api-key", accountkit.EnvironmentProd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	accounts, err := c.V1.GetSmartAccounts(ctx, botToken)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(accounts.Data.Accounts)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid option values are silently ignored and the default is retained;
// the assembled configuration is validated by [New] before any client is
// built, and a [*ConfigError] is returned for missing or malformed values.
// [WithBaseURL] overrides the environment-derived host verbatim.
//
// # Errors
//
// Every call resolves to exactly one of three failure shapes, all
// distinguishable with [errors.As]: [*ConfigError] (construction only),
// [*NetworkError] (no response was received; carries no HTTP status), and
// [*HTTPError] (a non-2xx response; carries status, headers, and the remote
// body verbatim). The client never retries; retry policy belongs to the
// caller.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [SlogLogger] for log/slog.
// The default [NoopLogger] discards all log output. When debug is enabled
// with [WithDebug], every request and response is traced through the logger
// with header values redacted: a logged value is masked when it exactly
// matches an environment-variable value captured at construction or a
// configured extra-header value. This is a heuristic: a secret passed as a
// plain literal is not masked, and a coincidental match is. Wire traffic is
// never masked.
package accountkit
