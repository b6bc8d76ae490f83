package db

import (
	"context"
	"testing"

	"shelf_inventory/errs"
	"shelf_inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedItem(t *testing.T, s string) *models.Item {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return &models.Item{ArrivalDate: &d}
}

func seedItems(t *testing.T, r *Repo, names ...string) []models.Item {
	t.Helper()
	out := make([]models.Item, 0, len(names))
	for _, n := range names {
		it := &models.Item{Name: n, Quantity: 1}
		require.NoError(t, r.CreateItem(context.Background(), it))
		out = append(out, *it)
	}
	return out
}

func TestCreateItem_IgnoresID(t *testing.T) {
	r := NewRepo(newTestDB(t))
	it := &models.Item{ID: 42, Name: "볼트"}
	require.NoError(t, r.CreateItem(context.Background(), it))
	assert.Equal(t, uint(1), it.ID)
}

func TestSearchItems(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()
	seedItems(t, r, "Bolt M6", "hex bolt", "Nut", "100% cotton", "a_b", "éclair")

	cases := []struct {
		q    string
		want []string
	}{
		{"", []string{"Bolt M6", "hex bolt", "Nut", "100% cotton", "a_b", "éclair"}},
		{"BOLT", []string{"Bolt M6", "hex bolt"}},
		{"nut", []string{"Nut"}},
		{"%", []string{"100% cotton"}},
		{"_", []string{"a_b"}},
		{"washer", nil},
		{"ÉCLAIR", []string{"éclair"}},
	}
	for _, tc := range cases {
		t.Run(tc.q, func(t *testing.T) {
			items, err := r.SearchItems(ctx, tc.q)
			require.NoError(t, err)
			var got []string
			for _, it := range items {
				got = append(got, it.Name)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListItems_PreloadsLocation(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()
	_, err := r.SeedShelves(ctx, 2, 3)
	require.NoError(t, err)
	shelves, err := r.ListShelves(ctx)
	require.NoError(t, err)

	sh := shelves[1]
	lv := sh.Levels[2]
	require.NoError(t, r.CreateItem(ctx, &models.Item{Name: "located", ShelfID: &sh.ID, LevelID: &lv.ID}))
	require.NoError(t, r.CreateItem(ctx, &models.Item{Name: "shelf only", ShelfID: &sh.ID}))

	items, err := r.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2번 선반 3층", items[0].Location())
	assert.Equal(t, "", items[1].Location())
}

func TestUpdateItem(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()
	it := &models.Item{Name: "볼트", Quantity: 3, Remark: "대성"}
	require.NoError(t, r.CreateItem(ctx, it))

	got, err := r.UpdateItem(ctx, it.ID, map[string]any{"id": 99, "quantity": 7, "remark": ""})
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)
	assert.Equal(t, "볼트", got.Name)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, "", got.Remark)

	got, err = r.UpdateItem(ctx, it.ID, map[string]any{"name": "ÄPFEL"})
	require.NoError(t, err)
	found, err := r.SearchItems(ctx, "äpfel")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, got.ID, found[0].ID)

	_, err = r.UpdateItem(ctx, 404, map[string]any{"quantity": 1})
	assert.Equal(t, errs.CodeNotFound, errs.CodeOf(err))
}

func TestDeleteItem(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()
	items := seedItems(t, r, "a", "b")

	require.NoError(t, r.DeleteItem(ctx, items[0].ID))
	left, err := r.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "b", left[0].Name)

	err = r.DeleteItem(ctx, items[0].ID)
	assert.Equal(t, errs.CodeNotFound, errs.CodeOf(err))
}

func TestInsertItemsSkipDuplicates(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()

	rows := func() []models.Item {
		a := datedItem(t, "2023-01-01")
		a.Name, a.Quantity, a.Remark = "볼트", 10, "대성"
		b := datedItem(t, "2023-01-02")
		b.Name, b.Quantity, b.Remark = "너트", 5, "한일"
		return []models.Item{*a, *b}
	}

	n, err := r.InsertItemsSkipDuplicates(ctx, rows())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = r.InsertItemsSkipDuplicates(ctx, rows())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = r.InsertItemsSkipDuplicates(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	all, err := r.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInsertItemsSkipDuplicates_NoDateNoRemark(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()

	// 没有入库日、没有备注的行也要能去重
	rows := func() []models.Item {
		return []models.Item{
			{Name: "볼트", Quantity: 1},
			{Name: "너트", Quantity: 2, Remark: "대성"},
		}
	}
	n, err := r.InsertItemsSkipDuplicates(ctx, rows())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = r.InsertItemsSkipDuplicates(ctx, rows())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	// 日期不同不算重复
	withDate := datedItem(t, "2023-01-01")
	withDate.Name = "볼트"
	n, err = r.InsertItemsSkipDuplicates(ctx, []models.Item{*withDate})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreateItem_Duplicate(t *testing.T) {
	r := NewRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateItem(ctx, &models.Item{Name: "볼트"}))
	err := r.CreateItem(ctx, &models.Item{Name: "볼트"})
	require.Error(t, err)
	assert.Equal(t, errs.CodeAlreadyExists, errs.CodeOf(err))

	other := &models.Item{Name: "너트"}
	require.NoError(t, r.CreateItem(ctx, other))
	_, err = r.UpdateItem(ctx, other.ID, map[string]any{"name": "볼트"})
	assert.Equal(t, errs.CodeAlreadyExists, errs.CodeOf(err))
}
