package httpext

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems (timeouts, malformed requests,
// unexpected responses).
//
// Enable with WithDebugLogging(true), or set HTTPEXT_DEBUG=true or
// DEBUG=true in the environment. Dumps include headers and full bodies
// (tokens, user data), so keep this out of production environments and make
// sure log outputs are properly secured.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// HTTPEXT_DEBUG targets this package; DEBUG is the general development
// flag. Both must be set to the literal "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("HTTPEXT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
