package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/storage"
)

type fakeProjectStore struct {
	projects  map[uuid.UUID]Project
	created   []NewProject
	lastPatch Patch
	listErr   error
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]Project)}
}

func (f *fakeProjectStore) Create(ctx context.Context, ownerID uuid.UUID, in NewProject) (Project, error) {
	f.created = append(f.created, in)
	p := Project{
		ID:           uuid.New(),
		OwnerUserID:  ownerID,
		ClientID:     in.ClientID,
		Name:         in.Name,
		Description:  in.Description,
		Status:       in.Status,
		StartDate:    in.StartDate,
		DueDate:      in.DueDate,
		BudgetCents:  in.BudgetCents,
		RevenueCents: in.RevenueCents,
	}
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectStore) List(ctx context.Context, ownerID uuid.UUID, flt Filter, limit, offset int) ([]Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]Project, 0, len(f.projects))
	for _, p := range f.projects {
		if p.OwnerUserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) Get(ctx context.Context, ownerID, id uuid.UUID) (Project, error) {
	p, ok := f.projects[id]
	if !ok || p.OwnerUserID != ownerID {
		return Project{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, ownerID, id uuid.UUID, patch Patch) (Project, error) {
	f.lastPatch = patch
	p, ok := f.projects[id]
	if !ok || p.OwnerUserID != ownerID {
		return Project{}, storage.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.RevenueCents != nil {
		p.RevenueCents = *patch.RevenueCents
	}
	f.projects[id] = p
	return p, nil
}

func (f *fakeProjectStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	p, ok := f.projects[id]
	if !ok || p.OwnerUserID != ownerID {
		return storage.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectStore) ExportRows(ctx context.Context, ownerID uuid.UUID) ([]ExportRow, error) {
	return nil, nil
}

type fakeClientChecker struct {
	owned map[uuid.UUID]bool
}

func (f *fakeClientChecker) Exists(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	return f.owned[id], nil
}

func setupProjectsRouter(store Store, clients ClientChecker, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserID, userID)
		c.Next()
	})
	Register(r.Group("/projects"), store, clients)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestProjectCreate(t *testing.T) {
	userID := uuid.New()
	store := newFakeProjectStore()
	checker := &fakeClientChecker{owned: map[uuid.UUID]bool{}}
	r := setupProjectsRouter(store, checker, userID)

	t.Run("creates with defaults", func(t *testing.T) {
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "Website relaunch"})
		require.Equal(t, http.StatusCreated, rr.Code)

		var p Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Equal(t, "Website relaunch", p.Name)
		assert.Equal(t, StatusActive, p.Status)
		assert.Equal(t, userID, p.OwnerUserID)
		assert.Nil(t, p.ClientID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "   "})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "x", "status": "archived"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects negative revenue", func(t *testing.T) {
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "x", "revenue_cents": -5})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "x", "start_date": "03/01/2024"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects client owned by someone else", func(t *testing.T) {
		foreign := uuid.New()
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "x", "client_id": foreign.String()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("accepts owned client", func(t *testing.T) {
		owned := uuid.New()
		checker.owned[owned] = true
		rr := doJSON(r, http.MethodPost, "/projects", gin.H{"name": "x", "client_id": owned.String()})
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

func TestProjectList(t *testing.T) {
	userID := uuid.New()
	store := newFakeProjectStore()
	checker := &fakeClientChecker{owned: map[uuid.UUID]bool{}}
	r := setupProjectsRouter(store, checker, userID)

	t.Run("rejects limit over maximum", func(t *testing.T) {
		rr := doJSON(r, http.MethodGet, "/projects?limit=500", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		rr := doJSON(r, http.MethodGet, "/projects?offset=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		rr := doJSON(r, http.MethodGet, "/projects?status=archived", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects client filter for foreign client", func(t *testing.T) {
		rr := doJSON(r, http.MethodGet, "/projects?client_id="+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("returns owned projects", func(t *testing.T) {
		_, err := store.Create(context.Background(), userID, NewProject{Name: "mine", Status: StatusActive})
		require.NoError(t, err)

		rr := doJSON(r, http.MethodGet, "/projects", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var items []Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})
}

func TestProjectUpdateAndDelete(t *testing.T) {
	userID := uuid.New()
	store := newFakeProjectStore()
	checker := &fakeClientChecker{owned: map[uuid.UUID]bool{}}
	r := setupProjectsRouter(store, checker, userID)

	p, err := store.Create(context.Background(), userID, NewProject{Name: "initial", Status: StatusActive})
	require.NoError(t, err)

	t.Run("partial update changes only provided fields", func(t *testing.T) {
		rr := doJSON(r, http.MethodPut, "/projects/"+p.ID.String(), gin.H{"revenue_cents": 9000})
		require.Equal(t, http.StatusOK, rr.Code)

		var got Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "initial", got.Name)
		assert.Equal(t, int64(9000), got.RevenueCents)
	})

	t.Run("null and empty dates keep existing values", func(t *testing.T) {
		start := "2024-03-01"
		rr := doJSON(r, http.MethodPut, "/projects/"+p.ID.String(), gin.H{"start_date": start})
		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, store.lastPatch.StartDate)

		for _, body := range []gin.H{{"start_date": ""}, {"start_date": nil}} {
			rr = doJSON(r, http.MethodPut, "/projects/"+p.ID.String(), body)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Nil(t, store.lastPatch.StartDate)

			var got Project
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			require.NotNil(t, got.StartDate)
			assert.Equal(t, start, got.StartDate.Format("2006-01-02"))
		}
	})

	t.Run("update of missing project yields 404", func(t *testing.T) {
		rr := doJSON(r, http.MethodPut, "/projects/"+uuid.NewString(), gin.H{"name": "x"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		rr := doJSON(r, http.MethodDelete, "/projects/"+p.ID.String(), nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = doJSON(r, http.MethodDelete, "/projects/"+p.ID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
