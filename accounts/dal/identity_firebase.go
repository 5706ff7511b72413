package dal

import (
	"context"
	"errors"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/drowsalert/admin-api/accounts/domain"
)

// listUsersPageSize matches the provider's maximum page size.
const listUsersPageSize = 1000

var (
	ErrUserNotFound       = errors.New("account not found in identity provider")
	ErrEmailAlreadyExists = errors.New("email already in use")
)

// IdentityFirebase is used to interact with accounts owned by Firebase Auth.
type IdentityFirebase struct {
	client *firebaseauth.Client
}

// NewIdentityFirebase returns a new IdentityFirebase for the given project id.
func NewIdentityFirebase(ctx context.Context, projectID string) (*IdentityFirebase, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return NewIdentityFirebaseWithClient(client), nil
}

// NewIdentityFirebaseWithClient returns a new IdentityFirebase using the given client.
func NewIdentityFirebaseWithClient(client *firebaseauth.Client) *IdentityFirebase {
	return &IdentityFirebase{client: client}
}

func (d *IdentityFirebase) GetUser(ctx context.Context, uid string) (*domain.ProviderRecord, error) {
	record, err := d.client.GetUser(ctx, uid)
	if err != nil {
		return nil, translateAuthError(err)
	}

	return toProviderRecord(record), nil
}

func (d *IdentityFirebase) GetUserByEmail(ctx context.Context, email string) (*domain.ProviderRecord, error) {
	record, err := d.client.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, translateAuthError(err)
	}

	return toProviderRecord(record), nil
}

// ListUsers returns one provider page of account records and the continuation
// token of the next page. An empty token means the scan is exhausted.
func (d *IdentityFirebase) ListUsers(ctx context.Context, pageToken string) ([]*domain.ProviderRecord, string, error) {
	pager := iterator.NewPager(d.client.Users(ctx, ""), listUsersPageSize, pageToken)

	var page []*firebaseauth.ExportedUserRecord

	nextPageToken, err := pager.NextPage(&page)
	if err != nil {
		return nil, "", err
	}

	records := make([]*domain.ProviderRecord, 0, len(page))
	for _, exported := range page {
		records = append(records, toProviderRecord(exported.UserRecord))
	}

	return records, nextPageToken, nil
}

func (d *IdentityFirebase) CreateUser(ctx context.Context, email, password, displayName string) (*domain.ProviderRecord, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := d.client.CreateUser(ctx, params)
	if err != nil {
		return nil, translateAuthError(err)
	}

	return toProviderRecord(record), nil
}

func (d *IdentityFirebase) UpdateUser(ctx context.Context, uid, displayName, email string) (*domain.ProviderRecord, error) {
	params := (&firebaseauth.UserToUpdate{}).
		DisplayName(displayName).
		Email(email)

	record, err := d.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return nil, translateAuthError(err)
	}

	return toProviderRecord(record), nil
}

func (d *IdentityFirebase) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	params := (&firebaseauth.UserToUpdate{}).Disabled(disabled)

	if _, err := d.client.UpdateUser(ctx, uid, params); err != nil {
		return translateAuthError(err)
	}

	return nil
}

func (d *IdentityFirebase) SetRoleClaim(ctx context.Context, uid, role string) error {
	claims := map[string]interface{}{"role": role}

	if err := d.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return translateAuthError(err)
	}

	return nil
}

func (d *IdentityFirebase) DeleteUser(ctx context.Context, uid string) error {
	if err := d.client.DeleteUser(ctx, uid); err != nil {
		return translateAuthError(err)
	}

	return nil
}

func (d *IdentityFirebase) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return d.client.PasswordResetLink(ctx, email)
}

func (d *IdentityFirebase) CustomToken(ctx context.Context, uid string) (string, error) {
	return d.client.CustomToken(ctx, uid)
}

func translateAuthError(err error) error {
	switch {
	case firebaseauth.IsUserNotFound(err):
		return ErrUserNotFound
	case firebaseauth.IsEmailAlreadyExists(err):
		return ErrEmailAlreadyExists
	default:
		return err
	}
}

func toProviderRecord(record *firebaseauth.UserRecord) *domain.ProviderRecord {
	roleClaim := ""
	if v, ok := record.CustomClaims["role"].(string); ok {
		roleClaim = v
	}

	r := domain.ProviderRecord{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Disabled:    record.Disabled,
		RoleClaim:   roleClaim,
	}

	if record.UserMetadata != nil {
		r.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
		r.LastSeenAt = time.UnixMilli(record.UserMetadata.LastLogInTimestamp).UTC()
	}

	return &r
}
