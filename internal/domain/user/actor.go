package user

// Actor identifies the user invoking an operation, with the one role fact
// this service acts on. The transport layer builds it from verified claims.
type Actor struct {
	ID    string
	Admin bool
}

// IsAdministrator is the binary permission decision consumed by the
// lifecycle preconditions.
func (a Actor) IsAdministrator() bool {
	return a.Admin
}
