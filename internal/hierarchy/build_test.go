package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-engine/internal/model"
)

func parent(id int) *int { return &id }

func simplePartners() []model.Partner {
	return []model.Partner{
		{ID: 1, ParentID: nil, MonthlyRevenue: 2000},
		{ID: 2, ParentID: parent(1), MonthlyRevenue: 1000},
		{ID: 3, ParentID: parent(1), MonthlyRevenue: 1500},
		{ID: 4, ParentID: parent(2), MonthlyRevenue: 500},
	}
}

func TestBuild_Valid(t *testing.T) {
	tree, err := Build(simplePartners())
	require.NoError(t, err)

	assert.Equal(t, 1, tree.Root)
	assert.Equal(t, map[int][]int{1: {2, 3}, 2: {4}}, tree.Children)
	assert.Nil(t, tree.ChildrenOf(3))
	assert.Nil(t, tree.ChildrenOf(4))
}

func TestBuild_SinglePartner(t *testing.T) {
	tree, err := Build([]model.Partner{{ID: 7, MonthlyRevenue: 3000}})
	require.NoError(t, err)

	assert.Equal(t, 7, tree.Root)
	assert.Empty(t, tree.Children)
}

func TestBuild_ChildOrderFollowsInput(t *testing.T) {
	partners := []model.Partner{
		{ID: 5, ParentID: parent(1)},
		{ID: 3, ParentID: parent(1)},
		{ID: 1},
		{ID: 9, ParentID: parent(1)},
		{ID: 2, ParentID: parent(1)},
	}

	tree, err := Build(partners)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 9, 2}, tree.ChildrenOf(1))
}

func TestBuild_MultipleRoots(t *testing.T) {
	partners := []model.Partner{
		{ID: 1, MonthlyRevenue: 1000},
		{ID: 2, MonthlyRevenue: 1000},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrMultipleRoots)
	assert.ErrorIs(t, err, ErrInvalidHierarchy)
	assert.Contains(t, err.Error(), "partner 2")
}

func TestBuild_WithoutRoot(t *testing.T) {
	partners := []model.Partner{
		{ID: 1, ParentID: parent(2), MonthlyRevenue: 1000},
		{ID: 2, ParentID: parent(1), MonthlyRevenue: 1000},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrRootNotFound)
}

func TestBuild_ClosedRingIsRootNotFound(t *testing.T) {
	partners := []model.Partner{
		{ID: 1, ParentID: parent(3)},
		{ID: 2, ParentID: parent(1)},
		{ID: 3, ParentID: parent(2)},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrRootNotFound)
	assert.NotErrorIs(t, err, ErrCycleDetected)
}

func TestBuild_NonexistentParent(t *testing.T) {
	partners := []model.Partner{
		{ID: 1, MonthlyRevenue: 1000},
		{ID: 2, ParentID: parent(10), MonthlyRevenue: 1000},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrParentNotFound)
	assert.Contains(t, err.Error(), "parent 10")
}

func TestBuild_Cycle(t *testing.T) {
	partners := []model.Partner{
		{ID: 1, MonthlyRevenue: 1000},
		{ID: 2, ParentID: parent(4), MonthlyRevenue: 1000},
		{ID: 3, ParentID: parent(2), MonthlyRevenue: 1000},
		{ID: 4, ParentID: parent(3), MonthlyRevenue: 1000},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrCycleDetected)
	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestBuild_SelfParentIsCycle(t *testing.T) {
	partners := []model.Partner{
		{ID: 1},
		{ID: 2, ParentID: parent(2)},
	}

	_, err := Build(partners)
	require.ErrorIs(t, err, ErrCycleDetected)
}

func TestBuild_FirstViolationInInputOrderWins(t *testing.T) {
	tests := []struct {
		name     string
		partners []model.Partner
		want     error
	}{
		{
			name: "second root before missing parent",
			partners: []model.Partner{
				{ID: 1},
				{ID: 2},
				{ID: 3, ParentID: parent(99)},
			},
			want: ErrMultipleRoots,
		},
		{
			name: "missing parent before second root",
			partners: []model.Partner{
				{ID: 1},
				{ID: 3, ParentID: parent(99)},
				{ID: 2},
			},
			want: ErrParentNotFound,
		},
		{
			name: "missing parent hides a cycle",
			partners: []model.Partner{
				{ID: 1},
				{ID: 2, ParentID: parent(3)},
				{ID: 3, ParentID: parent(2)},
				{ID: 4, ParentID: parent(42)},
			},
			want: ErrParentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.partners)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_DeepChain(t *testing.T) {
	const depth = 200_000

	partners := make([]model.Partner, depth)
	partners[0] = model.Partner{ID: 1}
	for i := 1; i < depth; i++ {
		partners[i] = model.Partner{ID: i + 1, ParentID: parent(i)}
	}

	tree, err := Build(partners)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Root)
	assert.Len(t, tree.Children, depth-1)
}

func TestPostOrder_ChildrenBeforeParents(t *testing.T) {
	tree, err := Build(simplePartners())
	require.NoError(t, err)

	var order []int
	tree.PostOrder(func(id int) {
		order = append(order, id)
	})

	assert.Equal(t, []int{4, 2, 3, 1}, order)
}
