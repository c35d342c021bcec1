package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// CanAccess reports whether p may read or modify a record owned by ownerID.
func (p Principal) CanAccess(ownerID string) bool {
	return p.ID != "" && (p.ID == ownerID || p.IsAdmin())
}
