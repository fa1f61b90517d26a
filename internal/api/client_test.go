package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/apitest"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(server *apitest.Server) *Client {
	return New(config.ApiConfig{BaseUrl: server.URL(), Timeout: 10})
}

func TestLoginSetsAuthState(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	userId, _ := server.SeedUser("user@example.com", "password1")

	res, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, userId, res.UserID)
	assert.Equal(t, userId, client.UserId())
	assert.Equal(t, res.AuthToken, client.AuthToken())

	// 令牌生效，受保护的端点可访问
	user, err := client.GetUser(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestLoginFailureDecodesApiError(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	server.SeedUser("user@example.com", "password1")

	_, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, 401, StatusOf(err))
	assert.Equal(t, "InvalidAuth", CodeOf(err))
	assert.Empty(t, client.AuthToken())
}

func TestClearAuthDropsSession(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	userId, _ := server.SeedUser("user@example.com", "password1")
	_, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	client.ClearAuth()
	_, err = client.GetUser(context.Background(), userId)
	require.Error(t, err)
	assert.Equal(t, 401, StatusOf(err))
	assert.Equal(t, "Unauthorized", CodeOf(err))
}

func TestRefreshAuthRotatesToken(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	server.SeedUser("user@example.com", "password1")
	res, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	refreshed, err := client.RefreshAuth(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, res.AuthToken, refreshed.AuthToken)
	assert.Equal(t, refreshed.AuthToken, client.AuthToken())
}

func TestBackProject(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	userId, _ := server.SeedUser("user@example.com", "password1")
	_, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)

	server.SeedProject(&model.Project{
		ID:           "p1",
		BaseCurrency: model.PaymentCurrencyEthereum,
		Rewards:      []model.Reward{{ID: "r1", Price: "40"}},
	})

	res, err := client.BackProject(context.Background(), "p1", model.BackProjectRequest{
		Comment: "good luck",
		Rewards: []model.BackProjectReward{{RewardID: "r1", Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)

	pledges, err := client.ListPledges(context.Background(), model.ListPledgesRequest{
		UserID:    userId,
		ProjectID: "p1",
	})
	require.NoError(t, err)
	require.Len(t, pledges.Results, 1)
	pledge := pledges.Results[0]
	assert.Equal(t, "good luck", pledge.Comment)
	require.Len(t, pledge.Items, 1)
	assert.Equal(t, "r1", pledge.Items[0].RewardID)
	assert.Equal(t, int64(2), pledge.Items[0].Quantity)
	assert.Equal(t, "40", pledge.Items[0].PaidPrice)
	assert.Equal(t, model.BlockchainStatusPending, pledge.Items[0].BlockchainStatus)
}

func TestBackProjectUnknownReward(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newClient(server)
	server.SeedUser("user@example.com", "password1")
	_, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	server.SeedProject(&model.Project{ID: "p1"})

	_, err = client.BackProject(context.Background(), "p1", model.BackProjectRequest{
		Rewards: []model.BackProjectReward{{RewardID: "ghost", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, "UnknownReward", CodeOf(err))
}

func TestDecodeErrorFallback(t *testing.T) {
	// 非JSON错误响应退化为状态码错误
	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer raw.Close()

	client := New(config.ApiConfig{BaseUrl: raw.URL, Timeout: 10})
	_, err := client.GetProject(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, 502, StatusOf(err))
	assert.Equal(t, "Unknown", CodeOf(err))
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestStatusOfNonApiError(t *testing.T) {
	client := New(config.ApiConfig{BaseUrl: "http://127.0.0.1:1", Timeout: 1})
	_, err := client.GetProject(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.Empty(t, CodeOf(err))
}
