package canon

import "github.com/google/uuid"

// Namespace is the UUID namespace for content-addressed identifiers.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/zoobzio/canon"))

// UUID returns a name-based (version 5) UUID derived from v's canonical
// encoding. Structurally equal values share an identifier.
func UUID(v any) (uuid.UUID, error) {
	data, err := Marshal(v)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.NewSHA1(Namespace, data), nil
}
