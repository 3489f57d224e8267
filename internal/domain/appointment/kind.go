package appointment

// Kind distinguishes the two appointment tables. Domicile jobs are claimed
// by extern employees; location jobs are serviced by the shared intern pool.
type Kind string

const (
	KindDomicile Kind = "domicile"
	KindLocation Kind = "location"
)

// ParseKind accepts the short admin-route forms: "e" for domicile (extern)
// and "i" for location (intern).
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "e", string(KindDomicile):
		return KindDomicile, true
	case "i", string(KindLocation):
		return KindLocation, true
	}
	return "", false
}
