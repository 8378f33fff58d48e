package pult

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedRequest struct {
	Header http.Header
	Body   graphQLRequest
}

func newFakeAPI(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var body graphQLRequest
		assert.NoError(t, json.Unmarshal(raw, &body))
		seen = append(seen, recordedRequest{Header: r.Header.Clone(), Body: body})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestClient(url string) *Client {
	return NewClient(url, "secret-token", 5*time.Second, zap.NewNop())
}

func TestGetMyStatusReturnsFirstRecord(t *testing.T) {
	srv, seen := newFakeAPI(t, http.StatusOK, `{"data":{"trackPollsRange":[
		{"id":1,"resultOfficeId":"office-a","resultOfficeDeskId":42,"pollDate":"2026-10-19","user":{"firstName":"Ada"}},
		{"id":2,"resultOfficeId":"office-b","resultOfficeDeskId":7}
	]}}`)

	status, err := newTestClient(srv.URL).GetMyStatus(context.Background(), "2026-10-19")
	require.NoError(t, err)
	require.NotNil(t, status)

	assert.Equal(t, domain.ID("office-a"), status.ResultOfficeID)
	assert.Equal(t, domain.ID("42"), status.ResultOfficeDeskID)
	assert.Equal(t, "Ada", status.User.FirstName)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Contains(t, req.Header.Get("Content-Type"), "application/json")
	assert.Equal(t, "https://app.pult.com", req.Header.Get("Origin"))
	assert.Equal(t, "GetTrackPollsByRange", req.Body.OperationName)
	assert.Equal(t, "2026-10-19", req.Body.Variables["fromDate"])
	assert.Equal(t, "2026-10-19", req.Body.Variables["toDate"])
}

func TestGetMyStatusEmpty(t *testing.T) {
	tests := map[string]string{
		"empty list": `{"data":{"trackPollsRange":[]}}`,
		"null list":  `{"data":{"trackPollsRange":null}}`,
		"null data":  `{"data":null}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			srv, _ := newFakeAPI(t, http.StatusOK, body)

			status, err := newTestClient(srv.URL).GetMyStatus(context.Background(), "2026-10-19")
			require.NoError(t, err)
			assert.Nil(t, status)
		})
	}
}

func TestGetMyStatusErrorPayload(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusOK, `{"errors":[{"message":"JWTExpired"},{"message":"second"}]}`)

	_, err := newTestClient(srv.URL).GetMyStatus(context.Background(), "2026-10-19")
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "JWTExpired", remote.Message)
	assert.Equal(t, "GetTrackPollsByRange", remote.Operation)
}

func TestExecuteUnexpectedStatus(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	_, err := newTestClient(srv.URL).GetOffices(context.Background())
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Contains(t, remote.Message, "502")
}

func TestExecuteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).GetMyStatus(context.Background(), "2026-10-19")
	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
}

func TestExecuteCancelledContext(t *testing.T) {
	srv, seen := newFakeAPI(t, http.StatusOK, `{"data":{}}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).GetOffices(ctx)
	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, *seen)
}

func TestGetOffices(t *testing.T) {
	srv, seen := newFakeAPI(t, http.StatusOK, `{"data":{"track_office":[
		{"id":"office-a","name":"HQ","desks":[{"id":42,"x":10,"y":20},{"id":43,"x":11,"y":21,"disabled":true}]},
		{"id":"office-b","name":"Annex","desks":[]}
	]}}`)

	offices, err := newTestClient(srv.URL).GetOffices(context.Background())
	require.NoError(t, err)
	require.Len(t, offices, 2)

	desk, ok := offices[0].FindDesk("42")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinate{X: 10, Y: 20}, desk.Coordinate())
	assert.True(t, offices[0].Desks[1].Disabled)

	require.Len(t, *seen, 1)
	assert.Equal(t, "GetTrackOffices", (*seen)[0].Body.OperationName)
	assert.Contains(t, (*seen)[0].Body.Query, "timestamp_archived: {_is_null: true}")
}

func TestGetOfficesMissingField(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusOK, `{"data":{}}`)

	_, err := newTestClient(srv.URL).GetOffices(context.Background())
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
}

func TestGetOfficesErrorPayload(t *testing.T) {
	srv, _ := newFakeAPI(t, http.StatusOK, `{"errors":[{"message":"field not found"}],"data":null}`)

	_, err := newTestClient(srv.URL).GetOffices(context.Background())
	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "field not found", remote.Message)
}
