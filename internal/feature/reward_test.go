package feature

import (
	"context"
	"testing"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/apitest"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitCreateReward(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	userId := loginTestUser(t, server, client)
	rewards := NewRewardFeature(client)

	project := &model.Project{ID: "p1", UserID: userId, RewardsOrder: []string{"r1"}}
	server.SeedProject(project)

	id, err := rewards.SubmitCreate(context.Background(), project, model.CreateRewardRequest{
		Name:  "Lamp",
		Price: "40",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, []string{"r1", id}, project.RewardsOrder)
	assert.Equal(t, []string{"r1", id}, server.Project("p1").RewardsOrder)
	require.Len(t, server.Project("p1").Rewards, 1)
	assert.Equal(t, "Lamp", server.Project("p1").Rewards[0].Name)
}

func TestSubmitCreateRewardOrderFailure(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	userId := loginTestUser(t, server, client)
	rewards := NewRewardFeature(client)

	project := &model.Project{ID: "p1", UserID: userId, RewardsOrder: []string{}}
	server.SeedProject(project)

	server.FailNextProjectUpdate(500)
	id, err := rewards.SubmitCreate(context.Background(), project, model.CreateRewardRequest{
		Name:  "Lamp",
		Price: "40",
	})
	require.Error(t, err)
	// 回报已创建，ID返回给调用方，本地顺序不变
	assert.NotEmpty(t, id)
	assert.Empty(t, project.RewardsOrder)
}

func TestSubmitUpdateReward(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	client := newTestClient(t, server)
	userId := loginTestUser(t, server, client)
	rewards := NewRewardFeature(client)

	server.SeedProject(&model.Project{
		ID:      "p1",
		UserID:  userId,
		Rewards: []model.Reward{{ID: "r1", Name: "Sticker", Price: "5"}},
	})

	price := "8"
	err := rewards.SubmitUpdate(context.Background(), "r1", model.UpdateRewardRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "8", server.Project("p1").Rewards[0].Price)
	assert.Equal(t, "Sticker", server.Project("p1").Rewards[0].Name)
}
