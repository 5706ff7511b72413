package dal

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/drowsalert/admin-api/accounts/domain"
	"github.com/drowsalert/admin-api/framework/connection"
)

const profilesCollection = "users"

var ErrProfileNotFound = errors.New("profile document not found")

// ProfilesFirestore is used to interact with account profile documents stored
// on Firestore.
type ProfilesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewProfilesFirestore returns a new ProfilesFirestore instance with given project id.
func NewProfilesFirestore(ctx context.Context, projectID string) (*ProfilesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewProfilesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewProfilesFirestoreWithClient returns a new ProfilesFirestore using given client.
func NewProfilesFirestoreWithClient(fun connection.FirestoreFromContextFun) *ProfilesFirestore {
	return &ProfilesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ProfilesFirestore) profilesCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(profilesCollection)
}

// GetProfile returns the profile document of the account with the given uid.
func (d *ProfilesFirestore) GetProfile(ctx context.Context, uid string) (*domain.Profile, error) {
	snap, err := d.profilesCollection(ctx).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	var profile domain.Profile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetProfiles returns the profile documents for the given uids, keyed by uid.
// Accounts without a profile document are absent from the result.
func (d *ProfilesFirestore) GetProfiles(ctx context.Context, uids []string) (map[string]*domain.Profile, error) {
	collection := d.profilesCollection(ctx)

	docRefs := make([]*firestore.DocumentRef, 0, len(uids))
	for _, uid := range uids {
		docRefs = append(docRefs, collection.Doc(uid))
	}

	fs := d.firestoreClientFun(ctx)

	docSnaps, err := fs.GetAll(ctx, docRefs)
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]*domain.Profile, len(docSnaps))

	var merr *multierror.Error

	for _, docSnap := range docSnaps {
		if !docSnap.Exists() {
			continue
		}

		var profile domain.Profile
		if err := docSnap.DataTo(&profile); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("profile %s: %w", docSnap.Ref.ID, err))
			continue
		}

		profiles[docSnap.Ref.ID] = &profile
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// SetProfile writes the whole profile document of the account with the given uid.
func (d *ProfilesFirestore) SetProfile(ctx context.Context, uid string, profile *domain.Profile) error {
	_, err := d.profilesCollection(ctx).Doc(uid).Set(ctx, profile)
	return err
}

// UpdateRole updates only the role field of the profile document.
func (d *ProfilesFirestore) UpdateRole(ctx context.Context, uid, role string) error {
	_, err := d.profilesCollection(ctx).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProfileNotFound
		}

		return err
	}

	return nil
}

// UpdateDisplayFields mirrors the provider-owned display fields onto the
// profile document.
func (d *ProfilesFirestore) UpdateDisplayFields(ctx context.Context, uid, displayName, email string) error {
	_, err := d.profilesCollection(ctx).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "email", Value: email},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProfileNotFound
		}

		return err
	}

	return nil
}

// DeleteProfile deletes the profile document of the account with the given uid.
func (d *ProfilesFirestore) DeleteProfile(ctx context.Context, uid string) error {
	_, err := d.profilesCollection(ctx).Doc(uid).Delete(ctx)
	return err
}
