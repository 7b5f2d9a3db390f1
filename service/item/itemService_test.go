package item_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JRaven13/shareit/model"
	itemsvc "github.com/JRaven13/shareit/service/item"
	"github.com/JRaven13/shareit/util/apperr"
)

type repoMock struct {
	userExistsFn    func(id int64) (bool, error)
	requestExistsFn func(id int64) (bool, error)
	insertFn        func(it model.Item) (model.Item, error)
	byIDFn          func(id int64) (*model.Item, error)
	byIDAndOwnerFn  func(itemID, ownerID int64) (*model.Item, error)
	saveFn          func(it model.Item) error
	byOwnerFn       func(ownerID int64, limit, offset int) ([]model.Item, error)
	searchFn        func(text string, limit, offset int) ([]model.Item, error)
	startedFn       func(ids []int64, now time.Time) ([]model.Booking, error)
	upcomingFn      func(ids []int64, now time.Time) ([]model.Booking, error)
	commentsFn      func(ids []int64) ([]model.CommentDetail, error)
	hasFinishedFn   func(itemID, bookerID int64, now time.Time) (bool, error)
	insertCommentFn func(c model.Comment) (*model.CommentDetail, error)
}

func (m *repoMock) UserExists(_ context.Context, id int64) (bool, error) {
	if m.userExistsFn != nil {
		return m.userExistsFn(id)
	}
	return true, nil
}

func (m *repoMock) RequestExists(_ context.Context, id int64) (bool, error) {
	if m.requestExistsFn != nil {
		return m.requestExistsFn(id)
	}
	return true, nil
}

func (m *repoMock) Insert(_ context.Context, it model.Item) (model.Item, error) {
	if m.insertFn != nil {
		return m.insertFn(it)
	}
	it.ID = 1
	return it, nil
}

func (m *repoMock) ByID(_ context.Context, id int64) (*model.Item, error) {
	if m.byIDFn != nil {
		return m.byIDFn(id)
	}
	return nil, nil
}

func (m *repoMock) ByIDAndOwner(_ context.Context, itemID, ownerID int64) (*model.Item, error) {
	if m.byIDAndOwnerFn != nil {
		return m.byIDAndOwnerFn(itemID, ownerID)
	}
	return nil, nil
}

func (m *repoMock) Save(_ context.Context, it model.Item) error {
	if m.saveFn != nil {
		return m.saveFn(it)
	}
	return nil
}

func (m *repoMock) ByOwner(_ context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	if m.byOwnerFn != nil {
		return m.byOwnerFn(ownerID, limit, offset)
	}
	return nil, nil
}

func (m *repoMock) Search(_ context.Context, text string, limit, offset int) ([]model.Item, error) {
	if m.searchFn != nil {
		return m.searchFn(text, limit, offset)
	}
	return nil, nil
}

func (m *repoMock) ApprovedStartedByItems(_ context.Context, ids []int64, now time.Time) ([]model.Booking, error) {
	if m.startedFn != nil {
		return m.startedFn(ids, now)
	}
	return nil, nil
}

func (m *repoMock) ApprovedUpcomingByItems(_ context.Context, ids []int64, now time.Time) ([]model.Booking, error) {
	if m.upcomingFn != nil {
		return m.upcomingFn(ids, now)
	}
	return nil, nil
}

func (m *repoMock) CommentsByItems(_ context.Context, ids []int64) ([]model.CommentDetail, error) {
	if m.commentsFn != nil {
		return m.commentsFn(ids)
	}
	return nil, nil
}

func (m *repoMock) HasFinishedBooking(_ context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	if m.hasFinishedFn != nil {
		return m.hasFinishedFn(itemID, bookerID, now)
	}
	return false, nil
}

func (m *repoMock) InsertComment(_ context.Context, c model.Comment) (*model.CommentDetail, error) {
	if m.insertCommentFn != nil {
		return m.insertCommentFn(c)
	}
	c.ID = 1
	return &model.CommentDetail{Comment: c}, nil
}

func TestCreate_AttachesRequest(t *testing.T) {
	reqID := int64(3)
	var inserted model.Item
	m := &repoMock{insertFn: func(it model.Item) (model.Item, error) {
		inserted = it
		it.ID = 9
		return it, nil
	}}
	s := itemsvc.New(m)
	out, err := s.Create(context.Background(), 1, itemsvc.CreateInput{
		Name: "drill", Description: "strong", Available: true, RequestID: &reqID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.RequestID)
	require.Equal(t, reqID, *out.RequestID)
	require.Equal(t, int64(1), inserted.OwnerID)
}

func TestCreate_NoRequestYieldsNil(t *testing.T) {
	s := itemsvc.New(&repoMock{})
	out, err := s.Create(context.Background(), 1, itemsvc.CreateInput{Name: "drill", Available: true})
	require.NoError(t, err)
	require.Nil(t, out.RequestID)
}

func TestCreate_UnknownRequest(t *testing.T) {
	reqID := int64(404)
	m := &repoMock{requestExistsFn: func(int64) (bool, error) { return false, nil }}
	_, err := itemsvc.New(m).Create(context.Background(), 1, itemsvc.CreateInput{Name: "x", RequestID: &reqID})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdate_PatchSemantics(t *testing.T) {
	var saved model.Item
	m := &repoMock{
		byIDAndOwnerFn: func(itemID, ownerID int64) (*model.Item, error) {
			return &model.Item{ID: itemID, OwnerID: ownerID, Name: "old", Description: "desc", Available: true}, nil
		},
		saveFn: func(it model.Item) error {
			saved = it
			return nil
		},
	}
	s := itemsvc.New(m)

	blank := "  "
	newName := "new"
	avail := false
	_, err := s.Update(context.Background(), 1, 9, itemsvc.UpdateInput{
		Name:        &newName,
		Description: &blank, // blank is ignored
		Available:   &avail,
	})
	require.NoError(t, err)
	require.Equal(t, "new", saved.Name)
	require.Equal(t, "desc", saved.Description)
	require.False(t, saved.Available)
}

func TestUpdate_NonOwnerIsNotFound(t *testing.T) {
	s := itemsvc.New(&repoMock{}) // combined lookup yields nil
	_, err := s.Update(context.Background(), 2, 9, itemsvc.UpdateInput{})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestByItemID_OwnerSeesLastAndNext(t *testing.T) {
	now := time.Now()
	m := &repoMock{
		byIDFn: func(id int64) (*model.Item, error) {
			return &model.Item{ID: id, OwnerID: 1, Available: true}, nil
		},
		startedFn: func(ids []int64, _ time.Time) ([]model.Booking, error) {
			return []model.Booking{
				{ID: 1, ItemID: ids[0], End: now.Add(-2 * time.Hour)},
				{ID: 2, ItemID: ids[0], End: now.Add(-1 * time.Hour)}, // latest end wins
			}, nil
		},
		upcomingFn: func(ids []int64, _ time.Time) ([]model.Booking, error) {
			return []model.Booking{
				{ID: 3, ItemID: ids[0], Start: now.Add(2 * time.Hour)},
				{ID: 4, ItemID: ids[0], Start: now.Add(1 * time.Hour)}, // soonest start wins
			}, nil
		},
	}
	s := itemsvc.New(m)

	d, err := s.ByItemID(context.Background(), 1, 9)
	require.NoError(t, err)
	require.NotNil(t, d.LastBooking)
	require.Equal(t, int64(2), d.LastBooking.ID)
	require.NotNil(t, d.NextBooking)
	require.Equal(t, int64(4), d.NextBooking.ID)
	require.NotNil(t, d.Comments)
}

func TestByItemID_NonOwnerSeesNoBookings(t *testing.T) {
	var bookingsQueried bool
	m := &repoMock{
		byIDFn: func(id int64) (*model.Item, error) {
			return &model.Item{ID: id, OwnerID: 1}, nil
		},
		startedFn: func([]int64, time.Time) ([]model.Booking, error) {
			bookingsQueried = true
			return nil, nil
		},
	}
	d, err := itemsvc.New(m).ByItemID(context.Background(), 2, 9)
	require.NoError(t, err)
	require.Nil(t, d.LastBooking)
	require.Nil(t, d.NextBooking)
	require.False(t, bookingsQueried)
}

func TestAllByUser_BatchedAnnotations(t *testing.T) {
	now := time.Now()
	var startedCalls, commentCalls int
	m := &repoMock{
		byOwnerFn: func(ownerID int64, _, _ int) ([]model.Item, error) {
			return []model.Item{{ID: 1, OwnerID: ownerID}, {ID: 2, OwnerID: ownerID}}, nil
		},
		startedFn: func(ids []int64, _ time.Time) ([]model.Booking, error) {
			startedCalls++
			require.Equal(t, []int64{1, 2}, ids)
			return []model.Booking{{ID: 10, ItemID: 1, End: now.Add(-time.Hour)}}, nil
		},
		commentsFn: func(ids []int64) ([]model.CommentDetail, error) {
			commentCalls++
			return []model.CommentDetail{{Comment: model.Comment{ID: 5, ItemID: 2, Text: "good"}}}, nil
		},
	}
	out, err := itemsvc.New(m).AllByUser(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 1, startedCalls, "one query across all items")
	require.Equal(t, 1, commentCalls)
	require.NotNil(t, out[0].LastBooking)
	require.Equal(t, int64(10), out[0].LastBooking.ID)
	require.Nil(t, out[1].LastBooking)
	require.Empty(t, out[0].Comments)
	require.Len(t, out[1].Comments, 1)
}

func TestSearch_BlankTextShortCircuits(t *testing.T) {
	var queried bool
	m := &repoMock{searchFn: func(string, int, int) ([]model.Item, error) {
		queried = true
		return nil, nil
	}}
	s := itemsvc.New(m)
	for _, text := range []string{"", "   "} {
		out, err := s.Search(context.Background(), 1, text, 0, 10)
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	}
	require.False(t, queried)
}

func TestSearch_LowercasesText(t *testing.T) {
	var got string
	m := &repoMock{searchFn: func(text string, _, _ int) ([]model.Item, error) {
		got = text
		return nil, nil
	}}
	_, err := itemsvc.New(m).Search(context.Background(), 1, "DRiLL", 0, 10)
	require.NoError(t, err)
	require.Equal(t, "drill", got)
}

func TestCreateComment_RequiresFinishedBooking(t *testing.T) {
	m := &repoMock{
		byIDFn: func(id int64) (*model.Item, error) { return &model.Item{ID: id, OwnerID: 1}, nil },
	}
	s := itemsvc.New(m)
	_, err := s.CreateComment(context.Background(), 2, 9, "nice")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	m.hasFinishedFn = func(int64, int64, time.Time) (bool, error) { return true, nil }
	out, err := s.CreateComment(context.Background(), 2, 9, "nice")
	require.NoError(t, err)
	require.Equal(t, "nice", out.Text)
	require.Equal(t, int64(2), out.AuthorID)
	require.False(t, out.Created.IsZero())
}
