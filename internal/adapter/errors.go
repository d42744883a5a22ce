package adapter

import "errors"

// ErrNetwork marks any failure below the application protocol: the request
// never completed, the response status carried no decodable envelope, or the
// body was malformed. The service layer maps it to a fixed user-facing
// message instead of exposing transport details.
var ErrNetwork = errors.New("network error occurred")
