package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	firebaseauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/gin-gonic/gin"

	"github.com/drowsalert/admin-api/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"
)

// Connection holds the shared platform clients. Components receive it (or
// functions derived from it) explicitly, never as ambient globals.
type Connection struct {
	*FirestoreClient
	*AuthClient
}

// NewConnection initializes the platform clients necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	fbAuth, err := NewAuth(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		fbAuth,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

// Auth returns the identity provider client.
func (c *Connection) Auth(ctx context.Context) *firebaseauth.Client {
	return c.auth
}

// Messaging returns the push messaging client.
func (c *Connection) Messaging(ctx context.Context) *messaging.Client {
	return c.messaging
}

// FirestoreFromContextFun type of a function that returns a firestore client from context.
type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
