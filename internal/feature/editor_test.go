package feature

import (
	"context"
	"testing"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/apitest"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwappedOrder(t *testing.T) {
	order := []string{"a", "b", "c"}

	swapped := SwappedOrder(order, 0, 2)
	assert.Equal(t, []string{"c", "b", "a"}, swapped)
	// 输入不被修改
	assert.Equal(t, []string{"a", "b", "c"}, order)

	assert.Equal(t, []string{"a", "b", "c"}, SwappedOrder(order, 1, 1))
	assert.Equal(t, []string{"a", "b", "c"}, SwappedOrder(order, -1, 2))
	assert.Equal(t, []string{"a", "b", "c"}, SwappedOrder(order, 0, 3))
	assert.Empty(t, SwappedOrder(nil, 0, 1))
}

func newTestEditor(t *testing.T, server *apitest.Server) (*Editor, *model.Project) {
	t.Helper()
	client := newTestClient(t, server)
	userId := loginTestUser(t, server, client)

	project := &model.Project{
		ID:          "p1",
		UserID:      userId,
		Name:        "Solar Lamp",
		AssetsOrder: []string{"a1", "a2"},
		Rewards: []model.Reward{
			{ID: "r1", Name: "Sticker", Price: "5"},
			{ID: "r2", Name: "Lamp", Price: "40"},
		},
		RewardsOrder: []string{"r1", "r2"},
	}
	server.SeedProject(project)

	editor := NewEditor(client)
	editor.LoadProject(context.Background(), "p1")
	require.NotNil(t, editor.Project())
	return editor, project
}

func TestUpdateAssetsOrder(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	newOrder := SwappedOrder(editor.Project().AssetsOrder, 0, 1)
	err := editor.UpdateAssetsOrder(context.Background(), newOrder)
	require.NoError(t, err)

	assert.Equal(t, []string{"a2", "a1"}, editor.Project().AssetsOrder)
	assert.Equal(t, []string{"a2", "a1"}, server.Project("p1").AssetsOrder)
}

func TestUpdateAssetsOrderRollsBackOnFailure(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	server.FailNextProjectUpdate(400)
	err := editor.UpdateAssetsOrder(context.Background(), []string{"a2", "a1"})
	require.Error(t, err)

	// 本地顺序回滚到原值，服务端不变
	assert.Equal(t, []string{"a1", "a2"}, editor.Project().AssetsOrder)
	assert.Equal(t, []string{"a1", "a2"}, server.Project("p1").AssetsOrder)
}

func TestUpdateRewardsOrderRollsBackOnFailure(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	server.FailNextProjectUpdate(400)
	err := editor.UpdateRewardsOrder(context.Background(), []string{"r2", "r1"})
	require.Error(t, err)
	assert.Equal(t, []string{"r1", "r2"}, editor.Project().RewardsOrder)
}

func TestRecordAddAsset(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	err := editor.RecordAddAsset(context.Background(), &model.CreateAssetResponse{
		ID:          "a3",
		ContentType: model.ContentTypePng,
		Size:        1024,
		ProjectID:   "p1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a2", "a3"}, editor.Project().AssetsOrder)
	require.Len(t, editor.Project().Assets, 1)
	assert.Equal(t, "a3", editor.Project().Assets[0].ID)
	assert.Equal(t, []string{"a1", "a2", "a3"}, server.Project("p1").AssetsOrder)
}

func TestRecordAddAssetOrderFailureAddsNothing(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	server.FailNextProjectUpdate(400)
	err := editor.RecordAddAsset(context.Background(), &model.CreateAssetResponse{
		ID:        "a3",
		ProjectID: "p1",
	})
	require.Error(t, err)

	// 顺序更新失败时资源不进入本地集合
	assert.Equal(t, []string{"a1", "a2"}, editor.Project().AssetsOrder)
	assert.Empty(t, editor.Project().Assets)
}

func TestRecordDeleteAsset(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)
	editor.Project().Assets = []model.ProjectAssetRelation{{ID: "a1"}, {ID: "a2"}}

	err := editor.RecordDeleteAsset(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, []string{"a2"}, editor.Project().AssetsOrder)
	require.Len(t, editor.Project().Assets, 1)
	assert.Equal(t, "a2", editor.Project().Assets[0].ID)
}

func TestRecordDeleteAssetFailureKeepsState(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)
	editor.Project().Assets = []model.ProjectAssetRelation{{ID: "a1"}, {ID: "a2"}}

	server.FailNextProjectUpdate(400)
	err := editor.RecordDeleteAsset(context.Background(), "a1")
	require.Error(t, err)

	assert.Equal(t, []string{"a1", "a2"}, editor.Project().AssetsOrder)
	assert.Len(t, editor.Project().Assets, 2)
}

func TestDeleteReward(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	err := editor.DeleteReward(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, []string{"r2"}, editor.Project().RewardsOrder)
	require.Len(t, editor.Project().Rewards, 1)
	assert.Equal(t, "r2", editor.Project().Rewards[0].ID)
	assert.Len(t, server.Project("p1").Rewards, 1)
	assert.Equal(t, []string{"r2"}, server.Project("p1").RewardsOrder)
}

func TestDeleteRewardOrderUpdateFailure(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor, _ := newTestEditor(t, server)

	server.FailNextProjectUpdate(500)
	err := editor.DeleteReward(context.Background(), "r1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order update failed")

	// 服务端回报已删除，本地保留原状态供重试
	assert.Len(t, server.Project("p1").Rewards, 1)
	assert.Equal(t, []string{"r1", "r2"}, editor.Project().RewardsOrder)
	assert.Len(t, editor.Project().Rewards, 2)
}

func TestEditorWithoutProjectIsNoop(t *testing.T) {
	server := apitest.NewServer()
	defer server.Close()
	editor := NewEditor(newTestClient(t, server))

	assert.NoError(t, editor.UpdateAssetsOrder(context.Background(), []string{"a1"}))
	assert.NoError(t, editor.DeleteReward(context.Background(), "r1"))
	assert.Nil(t, editor.Project())
}
