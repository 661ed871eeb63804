package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_APIKeyVerifier_Middleware(t *testing.T) {
	ctx := testutil.MockContext()
	verifier := NewAPIKeyVerifier(repository.NewUserRepository())

	user, err := testutil.SampleUser(ctx, &entity.User{APIKey: "known-key"})
	require.NoError(t, err)

	httpReq := httptest.NewRequest("GET", "/api/users/me", nil)
	httpReq.Header.Set("Api-Key", "known-key")

	gotCtx, err := verifier.Middleware()(xcontext.WithHTTPRequest(ctx, httpReq))
	require.NoError(t, err)
	require.Equal(t, user.ID, xcontext.RequestUserID(gotCtx))
	require.Equal(t, "known-key", xcontext.RequestAPIKey(gotCtx))

	// Unknown key is rejected.
	httpReq.Header.Set("Api-Key", "unknown-key")
	_, err = verifier.Middleware()(xcontext.WithHTTPRequest(ctx, httpReq))
	require.EqualError(t, err, "User not found")

	// Missing header too.
	httpReq.Header.Del("Api-Key")
	_, err = verifier.Middleware()(xcontext.WithHTTPRequest(ctx, httpReq))
	require.EqualError(t, err, "Missing Api-Key header")
}
