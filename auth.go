package accountkit

// Header names used by the AccountKit API.
const (
	headerAPIKey      = "X-API-KEY"
	headerBotToken    = "X-TG-BOT-TOKEN"
	headerAccessToken = "X-ACCESS-TOKEN"
	headerRequestID   = "X-Request-Id"
)

type authKind int

const (
	authAPIKeyOnly authKind = iota
	authBotToken
	authPlatformToken
)

// auth selects the call-level credential attached to a single request. The
// API key is not part of this set: it rides on the transport's default
// headers and is present on every request regardless of kind.
type auth struct {
	kind  authKind
	token string
}

func apiKeyOnly() auth {
	return auth{kind: authAPIKeyOnly}
}

func botAuth(token string) auth {
	return auth{kind: authBotToken, token: token}
}

// platformAuth carries a V2 access token. The platform itself travels as a
// query parameter, not a header; that split between versions is part of the
// remote API surface.
func platformAuth(token string) auth {
	return auth{kind: authPlatformToken, token: token}
}

func (a auth) headers() map[string]string {
	switch a.kind {
	case authBotToken:
		return map[string]string{headerBotToken: a.token}
	case authPlatformToken:
		return map[string]string{headerAccessToken: a.token}
	default:
		return nil
	}
}
