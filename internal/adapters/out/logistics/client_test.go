package logistics_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/adapters/out/logistics"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	userID   string
	token    string
	tokenErr error
}

func (s stubSession) CurrentUserID() string {
	return s.userID
}

func (s stubSession) FreshIDToken(_ context.Context) (string, error) {
	return s.token, s.tokenErr
}

type capturedRequest struct {
	path          string
	authorization string
	contentType   string
	body          map[string]string
}

func newCapturingServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		captured.path = r.URL.Path
		captured.authorization = r.Header.Get("Authorization")
		captured.contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newClient(server *httptest.Server, session stubSession) *logistics.Client {
	return logistics.NewClient(server.URL, session, slog.New(slog.DiscardHandler))
}

func TestClientReserve_SendsAssignRequestWithBearer(t *testing.T) {
	server, captured := newCapturingServer(t, http.StatusOK, `{}`)
	client := newClient(server, stubSession{userID: "courier-1", token: "id-token"})
	id := kernel.NewUUID()

	err := client.Reserve(t.Context(), id, "courier-1")

	require.NoError(t, err)
	assert.Equal(t, "/api/route/assign", captured.path)
	assert.Equal(t, "Bearer id-token", captured.authorization)
	assert.Equal(t, "application/json", captured.contentType)
	assert.Equal(t, id.String(), captured.body["routeUUID"])
	assert.Equal(t, "courier-1", captured.body["userID"])
}

func TestClientRelease_SendsEmptyUserID(t *testing.T) {
	server, captured := newCapturingServer(t, http.StatusOK, `{}`)
	client := newClient(server, stubSession{token: "id-token"})
	id := kernel.NewUUID()

	err := client.Release(t.Context(), id)

	require.NoError(t, err)
	assert.Equal(t, "/api/route/unassign", captured.path)
	assert.Equal(t, id.String(), captured.body["routeUUID"])
	userID, present := captured.body["userID"]
	assert.True(t, present)
	assert.Empty(t, userID)
}

func TestClientStart_SendsRouteOnly(t *testing.T) {
	server, captured := newCapturingServer(t, http.StatusOK, `{}`)
	client := newClient(server, stubSession{token: "id-token"})
	id := kernel.NewUUID()

	err := client.Start(t.Context(), id)

	require.NoError(t, err)
	assert.Equal(t, "/api/route/start", captured.path)
	assert.Equal(t, id.String(), captured.body["routeUUID"])
	assert.NotContains(t, captured.body, "userID")
}

func TestClientComplete_SendsConfirmationCode(t *testing.T) {
	server, captured := newCapturingServer(t, http.StatusOK, `{}`)
	client := newClient(server, stubSession{token: "id-token"})
	id := kernel.NewUUID()

	err := client.Complete(t.Context(), id, "4815")

	require.NoError(t, err)
	assert.Equal(t, "/api/package/confirm", captured.path)
	assert.Equal(t, "4815", captured.body["codigo"])
}

func TestClientComplete_InvalidCodeBody_MapsToInvalidConfirmationCode(t *testing.T) {
	server, _ := newCapturingServer(t, http.StatusBadRequest, `{"error":"Invalid confirmation code"}`)
	client := newClient(server, stubSession{token: "id-token"})
	id := kernel.NewUUID()

	err := client.Complete(t.Context(), id, "0000")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidConfirmationCode)
	assert.NotErrorIs(t, err, errs.ErrTransitionRejected)

	var invalidCode errs.InvalidConfirmationCodeError
	require.ErrorAs(t, err, &invalidCode)
	assert.Equal(t, id.String(), invalidCode.RouteID)
}

func TestClientComplete_OtherBadRequest_MapsToTransitionRejected(t *testing.T) {
	server, _ := newCapturingServer(t, http.StatusBadRequest, `{"error":"Route is not in progress"}`)
	client := newClient(server, stubSession{token: "id-token"})

	err := client.Complete(t.Context(), kernel.NewUUID(), "4815")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransitionRejected)
}

func TestClientCancel_ServerRejection_CarriesStatusAndBody(t *testing.T) {
	server, _ := newCapturingServer(t, http.StatusConflict, `{"error":"already terminal"}`)
	client := newClient(server, stubSession{token: "id-token"})

	err := client.Cancel(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	var rejected errs.TransitionRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusConflict, rejected.StatusCode)
	assert.Contains(t, rejected.Body, "already terminal")
}

func TestClient_NoSession_SendsWithoutAuthorizationHeader(t *testing.T) {
	server, captured := newCapturingServer(t, http.StatusOK, `{}`)
	client := newClient(server, stubSession{tokenErr: errors.New("no active session")})

	err := client.Start(t.Context(), kernel.NewUUID())

	require.NoError(t, err)
	assert.Empty(t, captured.authorization)
}

func TestClient_SlowServer_MapsToTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := logistics.NewClient(server.URL, stubSession{token: "id-token"},
		slog.New(slog.DiscardHandler), logistics.WithTimeout(20*time.Millisecond))

	err := client.Start(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTimeout)
}

func TestClient_UnreachableServer_MapsToNetworkUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	client := logistics.NewClient(server.URL, stubSession{token: "id-token"}, slog.New(slog.DiscardHandler))

	err := client.Start(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNetworkUnavailable)
}
