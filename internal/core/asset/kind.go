package asset

// Kind classifies an asset. The set is closed: the id prefix is derived
// from the kind, so an unknown kind would break id allocation.
type Kind string

const (
	KindService     Kind = "service"
	KindPlatform    Kind = "platform"
	KindExternalAPI Kind = "external-api"
	KindIntegration Kind = "integration"
	KindDatabase    Kind = "database"
	KindContainer   Kind = "container"
	KindAgent       Kind = "agent"
	KindCustom      Kind = "custom"
)

// kindCodes maps each kind to its id prefix.
var kindCodes = map[Kind]string{
	KindService:     "SVC",
	KindPlatform:    "PLT",
	KindExternalAPI: "API",
	KindIntegration: "INT",
	KindDatabase:    "DBS",
	KindContainer:   "CTR",
	KindAgent:       "AGT",
	KindCustom:      "CST",
}

// Kinds returns all kinds in display order.
func Kinds() []Kind {
	return []Kind{
		KindService, KindPlatform, KindExternalAPI, KindIntegration,
		KindDatabase, KindContainer, KindAgent, KindCustom,
	}
}

// ValidKind reports whether s names a known kind.
func ValidKind(s string) bool {
	_, ok := kindCodes[Kind(s)]
	return ok
}

// Code returns the id prefix for the kind ("SVC" for service).
// Unknown kinds get the custom prefix so ids stay well-formed.
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindCustom]
}

// KindFromCode resolves an id prefix back to its kind.
func KindFromCode(code string) (Kind, bool) {
	for k, c := range kindCodes {
		if c == code {
			return k, true
		}
	}
	return "", false
}
