package domain

import "time"

// Account roles. The profile document is the source of truth for the role;
// the identity provider may carry a mirrored custom claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is the merged read model of an identity provider record and its
// profile document, keyed by the provider-assigned uid.
type Account struct {
	ID          string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	Disabled    bool      `json:"disabled"`
	CreatedAt   time.Time `json:"creationTime"`
	LastSeenAt  time.Time `json:"lastSignInTime"`
}

// Profile is the document-store half of an account.
type Profile struct {
	Email       string `firestore:"email" json:"email"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	Role        string `firestore:"role" json:"role"`
}
