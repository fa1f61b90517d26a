package feature

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/apitest"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/cart"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(config.CartConfig{
		Path:    filepath.Join(t.TempDir(), "cart.db"),
		Name:    "cart",
		Version: 3,
	})
	require.NoError(t, err)
	return store
}

func newTestClient(t *testing.T, server *apitest.Server) *api.Client {
	t.Helper()
	return api.New(config.ApiConfig{BaseUrl: server.URL(), Timeout: 10})
}

func loginTestUser(t *testing.T, server *apitest.Server, client *api.Client) string {
	t.Helper()
	server.SeedUser("backer@example.com", "password1")
	res, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "backer@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	return res.UserID
}

func TestListProjects(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	store := newTestCart(t)
	projects := NewProjectFeature(client, store)

	server.SeedProject(&model.Project{Name: "Solar Lamp", Status: model.ProjectStatusActive})
	server.SeedProject(&model.Project{Name: "Board Game", Status: model.ProjectStatusActive})

	var params ListProjectParams
	projects.ListProjects(context.Background(), model.ListProjectsRequest{}, &params)
	assert.Empty(t, params.Error)
	assert.False(t, params.Loading)
	assert.Len(t, params.Projects, 2)
}

func TestGetProjectNotFound(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	projects := NewProjectFeature(newTestClient(t, server), newTestCart(t))

	var params GetProjectParams
	projects.GetProject(context.Background(), "missing", &params)
	assert.Equal(t, "errors.None", params.Error)
	assert.Nil(t, params.Project)
}

func TestGetPledgeRequiresLogin(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	projects := NewProjectFeature(newTestClient(t, server), newTestCart(t))

	var params GetPledgeParams
	projects.GetPledge(context.Background(), "p1", &params)
	assert.Nil(t, params.Pledge)
}

func TestGetPledgeSeedsEmptyCart(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	store := newTestCart(t)
	projects := NewProjectFeature(client, store)
	userId := loginTestUser(t, server, client)

	server.SeedPledge(&model.Pledge{
		ProjectID: "p1",
		UserID:    userId,
		Items: []model.PledgeItem{
			{RewardID: "r1", Quantity: 2},
			{RewardID: "r2", Quantity: 1},
		},
	})

	var params GetPledgeParams
	projects.GetPledge(context.Background(), "p1", &params)
	require.NotNil(t, params.Pledge)
	assert.Len(t, params.Pledge.Items, 2)

	items := store.Items("p1")
	require.Len(t, items, 2)
	assert.Equal(t, cart.CartItem{RewardID: "r1", Quantity: 2}, items[0])
	assert.Equal(t, cart.CartItem{RewardID: "r2", Quantity: 1}, items[1])
}

func TestGetPledgeKeepsExistingCart(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	store := newTestCart(t)
	projects := NewProjectFeature(client, store)
	userId := loginTestUser(t, server, client)

	store.AddItem("p1", "r9", 4)
	server.SeedPledge(&model.Pledge{
		ProjectID: "p1",
		UserID:    userId,
		Items:     []model.PledgeItem{{RewardID: "r1", Quantity: 2}},
	})

	var params GetPledgeParams
	projects.GetPledge(context.Background(), "p1", &params)
	require.NotNil(t, params.Pledge)

	// 本地已有选择时不被支持记录覆盖
	items := store.Items("p1")
	require.Len(t, items, 1)
	assert.Equal(t, cart.CartItem{RewardID: "r9", Quantity: 4}, items[0])
}

func TestCompareCartPledge(t *testing.T) {
	pledgeWith := func(items ...model.PledgeItem) *model.Pledge {
		return &model.Pledge{Items: items}
	}

	tests := []struct {
		name      string
		cartItems []cart.CartItem
		pledge    *model.Pledge
		usePledge bool
	}{
		{
			name:      "both empty uses cart",
			usePledge: false,
		},
		{
			name:      "empty cart empty pledge record uses pledge",
			pledge:    pledgeWith(),
			usePledge: true,
		},
		{
			name:      "nil pledge uses cart",
			cartItems: []cart.CartItem{{RewardID: "r1", Quantity: 1}},
			pledge:    nil,
			usePledge: false,
		},
		{
			name:      "empty cart non-empty pledge uses pledge",
			pledge:    pledgeWith(model.PledgeItem{RewardID: "r1", Quantity: 1}),
			usePledge: true,
		},
		{
			name:      "non-empty cart empty pledge uses cart",
			cartItems: []cart.CartItem{{RewardID: "r1", Quantity: 1}},
			pledge:    pledgeWith(),
			usePledge: false,
		},
		{
			name:      "count mismatch uses cart",
			cartItems: []cart.CartItem{{RewardID: "r1", Quantity: 1}},
			pledge: pledgeWith(
				model.PledgeItem{RewardID: "r1", Quantity: 1},
				model.PledgeItem{RewardID: "r2", Quantity: 1},
			),
			usePledge: false,
		},
		{
			name: "same items different quantity uses cart",
			cartItems: []cart.CartItem{
				{RewardID: "r1", Quantity: 1},
				{RewardID: "r2", Quantity: 2},
			},
			pledge: pledgeWith(
				model.PledgeItem{RewardID: "r1", Quantity: 1},
				model.PledgeItem{RewardID: "r2", Quantity: 3},
			),
			usePledge: false,
		},
		{
			name: "different reward sets uses cart",
			cartItems: []cart.CartItem{
				{RewardID: "r1", Quantity: 1},
				{RewardID: "r2", Quantity: 2},
			},
			pledge: pledgeWith(
				model.PledgeItem{RewardID: "r1", Quantity: 1},
				model.PledgeItem{RewardID: "r3", Quantity: 2},
			),
			usePledge: false,
		},
		{
			name: "exact match uses pledge",
			cartItems: []cart.CartItem{
				{RewardID: "r1", Quantity: 1},
				{RewardID: "r2", Quantity: 2},
			},
			pledge: pledgeWith(
				model.PledgeItem{RewardID: "r2", Quantity: 2},
				model.PledgeItem{RewardID: "r1", Quantity: 1},
			),
			usePledge: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestCart(t)
			for _, item := range tt.cartItems {
				store.AddItem("p1", item.RewardID, item.Quantity)
			}
			projects := NewProjectFeature(nil, store)
			assert.Equal(t, tt.usePledge, projects.CompareCartPledge("p1", tt.pledge))
		})
	}
}

// 新设备场景：购物车为空，服务端有支持记录，
// 加载后购物车被支持记录初始化且对账采用支持记录。
func TestPledgeReconciliationNewDevice(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	store := newTestCart(t)
	projects := NewProjectFeature(client, store)
	userId := loginTestUser(t, server, client)

	server.SeedProject(&model.Project{ID: "p1", Name: "Solar Lamp"})
	server.SeedPledge(&model.Pledge{
		ProjectID: "p1",
		UserID:    userId,
		Items:     []model.PledgeItem{{RewardID: "r1", Quantity: 2}},
	})

	var params GetPledgeParams
	projects.GetPledge(context.Background(), "p1", &params)
	require.NotNil(t, params.Pledge)
	assert.True(t, projects.CompareCartPledge("p1", params.Pledge))
	assert.Len(t, store.Items("p1"), 1)
}

// 修改选择场景：购物车与支持记录一致后本地再改数量，对账改用购物车。
func TestPledgeReconciliationAfterLocalEdit(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	store := newTestCart(t)
	projects := NewProjectFeature(client, store)
	userId := loginTestUser(t, server, client)

	server.SeedPledge(&model.Pledge{
		ProjectID: "p1",
		UserID:    userId,
		Items:     []model.PledgeItem{{RewardID: "r1", Quantity: 2}},
	})

	var params GetPledgeParams
	projects.GetPledge(context.Background(), "p1", &params)
	require.NotNil(t, params.Pledge)
	require.True(t, projects.CompareCartPledge("p1", params.Pledge))

	store.UpdateQuantity("p1", "r1", 3)
	assert.False(t, projects.CompareCartPledge("p1", params.Pledge))
}
