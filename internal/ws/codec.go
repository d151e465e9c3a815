package ws

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCBOR = "application/cbor"
)

// Encoding selects the wire format of a response or websocket stream.
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingCBOR
)

func (e Encoding) ContentType() string {
	if e == EncodingCBOR {
		return contentTypeCBOR
	}
	return contentTypeJSON
}

func (e Encoding) Marshal(v interface{}) ([]byte, error) {
	if e == EncodingCBOR {
		return cbor.Marshal(v)
	}
	return json.Marshal(v)
}

// Negotiate picks CBOR when the Accept header lists it, or when a websocket
// client asks for it with ?encoding=cbor. Anything else gets JSON.
func Negotiate(r *http.Request) Encoding {
	if r.URL.Query().Get("encoding") == "cbor" {
		return EncodingCBOR
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == contentTypeCBOR {
			return EncodingCBOR
		}
	}
	return EncodingJSON
}

func respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	enc := Negotiate(r)
	data, err := enc.Marshal(v)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", enc.ContentType())
	w.Header().Add("Vary", "Accept")
	w.WriteHeader(status)
	w.Write(data)
}
