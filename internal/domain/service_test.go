package domain

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/entity"
	"grainpay/internal/core/tx"
)

// --- test resource ---

type note struct {
	entity.BaseEntity
	Text string
}

type noteDTO struct {
	ID        *int64
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d noteDTO) RecordID() *int64 { return d.ID }

type noteMapper struct{ now time.Time }

func (m noteMapper) ToDTO(e *note) noteDTO {
	id := e.ID
	return noteDTO{ID: &id, Text: e.Text, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

func (m noteMapper) ToEntity(d noteDTO) *note {
	return &note{BaseEntity: entity.NewBaseEntity(m.now), Text: d.Text}
}

// memGateway is an in-memory Gateway counting writes.
type memGateway struct {
	mu     sync.Mutex
	rows   map[int64]note
	nextID int64
	writes int
	err    error
}

func newMemGateway() *memGateway {
	return &memGateway{rows: make(map[int64]note)}
}

func (g *memGateway) FindAll(_ context.Context, p PageRequest) (Page[*note], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return Page[*note]{}, g.err
	}

	ids := make([]int64, 0, len(g.rows))
	for id := range g.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var content []*note
	start := p.Offset()
	for i := start; i < int64(len(ids)) && i-start < int64(p.Size); i++ {
		n := g.rows[ids[i]]
		content = append(content, &n)
	}
	return Page[*note]{Content: content, Number: p.Page, Size: p.Size, TotalElements: int64(len(ids))}, nil
}

func (g *memGateway) FindByID(_ context.Context, id int64) (*note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.rows[id]
	if !ok {
		return nil, apperror.NewRecordNotFound("notes", id)
	}
	return &n, nil
}

func (g *memGateway) Save(_ context.Context, e *note) (*note, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	if e.IsNew() {
		g.nextID++
		e.AssignID(g.nextID)
	} else if _, ok := g.rows[e.ID]; !ok {
		return nil, apperror.NewRecordNotFound("notes", e.ID)
	}
	g.rows[e.ID] = *e
	g.writes++
	out := *e
	return &out, nil
}

func (g *memGateway) DeleteByID(_ context.Context, id int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rows[id]; !ok {
		return apperror.NewRecordNotFound("notes", id)
	}
	delete(g.rows, id)
	g.writes++
	return nil
}

func newNoteService(gw *memGateway, now time.Time) *CrudService[*note, noteDTO] {
	return NewCrudService(CrudServiceConfig[*note, noteDTO]{
		Gateway:         gw,
		Mapper:          noteMapper{now: now},
		TxManager:       tx.Passthrough,
		EntityName:      "Note",
		NotFoundMessage: "Note not found!",
	})
}

func ptr[T any](v T) *T { return &v }

// --- tests ---

func TestCrudService_SaveAssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	svc := newNoteService(newMemGateway(), now)

	got, err := svc.Save(context.Background(), noteDTO{ID: ptr(int64(42)), Text: "rent"})
	require.NoError(t, err)

	require.NotNil(t, got.ID)
	assert.Equal(t, int64(1), *got.ID, "body id must be ignored on create")
	assert.Equal(t, "rent", got.Text)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestCrudService_FindByIDMissing(t *testing.T) {
	svc := newNoteService(newMemGateway(), time.Now())

	_, err := svc.FindByID(context.Background(), 999)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "Note not found!", appErr.Message)
}

func TestCrudService_UpdateIDMismatchDoesNotTouchStore(t *testing.T) {
	gw := newMemGateway()
	svc := newNoteService(gw, time.Now())

	for _, body := range []noteDTO{
		{ID: ptr(int64(2)), Text: "x"},
		{Text: "no id"},
	} {
		_, err := svc.UpdateByID(context.Background(), 1, body)
		require.Error(t, err)
		assert.True(t, apperror.IsInvalidArgument(err))
		assert.Equal(t, IDMismatchMessage, err.(*apperror.AppError).Message)
	}
	assert.Zero(t, gw.writes)
}

func TestCrudService_UpdateMissing(t *testing.T) {
	gw := newMemGateway()
	svc := newNoteService(gw, time.Now())

	_, err := svc.UpdateByID(context.Background(), 7, noteDTO{ID: ptr(int64(7)), Text: "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, gw.writes)
	assert.Empty(t, gw.rows, "update must never insert")
}

func TestCrudService_UpdateKeepsCreatedAtAndRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	gw := newMemGateway()
	first, err := newNoteService(gw, created).Save(context.Background(), noteDTO{Text: "old"})
	require.NoError(t, err)

	got, err := newNoteService(gw, updated).UpdateByID(context.Background(), *first.ID, noteDTO{ID: first.ID, Text: "new"})
	require.NoError(t, err)

	assert.Equal(t, *first.ID, *got.ID)
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, updated, got.UpdatedAt)
	assert.Len(t, gw.rows, 1)
}

func TestCrudService_DeleteTwice(t *testing.T) {
	gw := newMemGateway()
	svc := newNoteService(gw, time.Now())

	saved, err := svc.Save(context.Background(), noteDTO{Text: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), *saved.ID))

	err = svc.DeleteByID(context.Background(), *saved.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Note not found!", err.(*apperror.AppError).Message)
}

func TestCrudService_FindAllPaging(t *testing.T) {
	gw := newMemGateway()
	svc := newNoteService(gw, time.Now())

	_, err := svc.Save(context.Background(), noteDTO{Text: "only"})
	require.NoError(t, err)

	page, err := svc.FindAll(context.Background(), DefaultPageRequest())
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(1), page.TotalElements)

	beyond, err := svc.FindAll(context.Background(), PageRequest{Page: 5, Size: 10, Sort: "id"})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Content)
	assert.Empty(t, beyond.Content)
}

func TestCrudService_FindAllHugePageIsEmpty(t *testing.T) {
	gw := newMemGateway()
	svc := newNoteService(gw, time.Now())

	_, err := svc.Save(context.Background(), noteDTO{Text: "only"})
	require.NoError(t, err)

	page, err := svc.FindAll(context.Background(), PageRequest{Page: 1_000_000_000_000_000_000, Size: 10, Sort: "id"})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	assert.Equal(t, int64(0), DefaultPageRequest().Offset())
	assert.Equal(t, int64(20), PageRequest{Page: 2, Size: 10}.Offset())
	assert.Equal(t, int64(math.MaxInt64), PageRequest{Page: 1_000_000_000_000_000_000, Size: 10}.Offset())
	assert.Equal(t, int64(math.MaxInt64), PageRequest{Page: math.MaxInt, Size: math.MaxInt}.Offset())
}

// readOnlyRecorder is a tx.ReadOnlyManager recording which mode ran.
type readOnlyRecorder struct {
	readOnly  int
	readWrite int
}

func (r *readOnlyRecorder) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.readWrite++
	return fn(ctx)
}

func (r *readOnlyRecorder) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	r.readOnly++
	return fn(ctx)
}

func TestCrudService_FindAllUsesReadOnlyTransaction(t *testing.T) {
	rec := &readOnlyRecorder{}
	svc := NewCrudService(CrudServiceConfig[*note, noteDTO]{
		Gateway:    newMemGateway(),
		Mapper:     noteMapper{now: time.Now()},
		TxManager:  rec,
		EntityName: "Note",
	})

	_, err := svc.FindAll(context.Background(), DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.readOnly)
	assert.Equal(t, 0, rec.readWrite)

	_, err = svc.Save(context.Background(), noteDTO{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.readOnly)
}

func TestCrudService_FindAllRejectsBadPaging(t *testing.T) {
	svc := newNoteService(newMemGateway(), time.Now())

	_, err := svc.FindAll(context.Background(), PageRequest{Page: -1, Size: 10})
	assert.True(t, apperror.IsInvalidArgument(err))

	_, err = svc.FindAll(context.Background(), PageRequest{Page: 0, Size: 0})
	assert.True(t, apperror.IsInvalidArgument(err))
}

func TestCrudService_StoreErrorsBecomeInternal(t *testing.T) {
	gw := newMemGateway()
	gw.err = errors.New("connection reset")
	svc := newNoteService(gw, time.Now())

	_, err := svc.Save(context.Background(), noteDTO{Text: "x"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
	assert.ErrorContains(t, appErr.Unwrap(), "connection reset")
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, Page[int]{Size: 10}.TotalPages())
	assert.Equal(t, 1, Page[int]{Size: 10, TotalElements: 10}.TotalPages())
	assert.Equal(t, 2, Page[int]{Size: 10, TotalElements: 11}.TotalPages())
}
