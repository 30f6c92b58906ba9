package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"toy-marketplace/internal/cache"
	"toy-marketplace/internal/logger"
	"toy-marketplace/internal/models"
	"toy-marketplace/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubToyStore implements ToyStore through optional function fields; any
// method without a field returns zero values.
type stubToyStore struct {
	list         func(ctx context.Context) ([]models.Toy, error)
	listBySeller func(ctx context.Context, email string) ([]models.Toy, error)
	listSorted   func(ctx context.Context, email string, asc bool) ([]models.Toy, error)
	search       func(ctx context.Context, name string) ([]models.Toy, error)
	listBySubcat func(ctx context.Context, sub string) ([]models.Toy, error)
	findByID     func(ctx context.Context, id string) (*models.Toy, error)
	create       func(ctx context.Context, toy *models.Toy) (string, error)
	update       func(ctx context.Context, id string, u models.ToyUpdate) (*mongo.UpdateResult, error)
	decrement    func(ctx context.Context, id string) (*models.Toy, error)
	deleteFn     func(ctx context.Context, id string) (int64, error)
}

func (s *stubToyStore) List(ctx context.Context) ([]models.Toy, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func (s *stubToyStore) ListBySeller(ctx context.Context, email string) ([]models.Toy, error) {
	if s.listBySeller != nil {
		return s.listBySeller(ctx, email)
	}
	return nil, nil
}

func (s *stubToyStore) ListBySellerSorted(ctx context.Context, email string, asc bool) ([]models.Toy, error) {
	if s.listSorted != nil {
		return s.listSorted(ctx, email, asc)
	}
	return nil, nil
}

func (s *stubToyStore) SearchByName(ctx context.Context, name string) ([]models.Toy, error) {
	if s.search != nil {
		return s.search(ctx, name)
	}
	return nil, nil
}

func (s *stubToyStore) ListBySubcategory(ctx context.Context, sub string) ([]models.Toy, error) {
	if s.listBySubcat != nil {
		return s.listBySubcat(ctx, sub)
	}
	return nil, nil
}

func (s *stubToyStore) FindByID(ctx context.Context, id string) (*models.Toy, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubToyStore) Create(ctx context.Context, toy *models.Toy) (string, error) {
	if s.create != nil {
		return s.create(ctx, toy)
	}
	return "", nil
}

func (s *stubToyStore) Update(ctx context.Context, id string, u models.ToyUpdate) (*mongo.UpdateResult, error) {
	if s.update != nil {
		return s.update(ctx, id, u)
	}
	return &mongo.UpdateResult{}, nil
}

func (s *stubToyStore) DecrementQuantity(ctx context.Context, id string) (*models.Toy, error) {
	if s.decrement != nil {
		return s.decrement(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubToyStore) Delete(ctx context.Context, id string) (int64, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return 0, nil
}

func newToyRouter(store ToyStore) *gin.Engine {
	h := NewToyHandler(store, cache.New(time.Minute), logger.Nop())
	r := gin.New()
	r.GET("/toys", h.ListToys)
	r.GET("/toys/search", h.SearchToys)
	r.GET("/toys/subcategory/:name", h.ListBySubcategory)
	r.GET("/toys/:id", h.GetToy)
	r.POST("/toys", h.CreateToy)
	r.PATCH("/toys/:id", h.UpdateToy)
	r.PATCH("/toys/:id/decrement", h.DecrementToy)
	r.DELETE("/toys/:id", h.DeleteToy)
	r.GET("/mytoys", h.ListMyToys)
	r.GET("/mytoys/sort", h.SortMyToys)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"action": "Action",
		"ACTION": "Action",
		"acTION": "Action",
		"Action": "Action",
		"sports": "Sports",
		"":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, capitalize(in), "capitalize(%q)", in)
	}
}

func TestListToys(t *testing.T) {
	store := &stubToyStore{
		list: func(context.Context) ([]models.Toy, error) {
			return []models.Toy{{ToyName: "Robot"}, {ToyName: "Red Car"}}, nil
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodGet, "/toys", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var toys []models.Toy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toys))
	assert.Len(t, toys, 2)
}

func TestListToys_StoreFailure(t *testing.T) {
	store := &stubToyStore{
		list: func(context.Context) ([]models.Toy, error) {
			return nil, errors.New("connection reset")
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodGet, "/toys", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestListMyToys_RequiresSellerEmail(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodGet, "/mytoys", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSortMyToys(t *testing.T) {
	var gotAscending bool
	store := &stubToyStore{
		listSorted: func(_ context.Context, email string, asc bool) ([]models.Toy, error) {
			gotAscending = asc
			return []models.Toy{{Price: 9}, {Price: 10}}, nil
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodGet, "/mytoys/sort?sellerEmail=a@x.com&sortOrder=Ascending", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotAscending)
}

func TestSortMyToys_BadOrder(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodGet, "/mytoys/sort?sellerEmail=a@x.com&sortOrder=Sideways", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchToys_RequiresName(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodGet, "/toys/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBySubcategory_NormalizesCasing(t *testing.T) {
	var gotSub string
	store := &stubToyStore{
		listBySubcat: func(_ context.Context, sub string) ([]models.Toy, error) {
			gotSub = sub
			return nil, nil
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodGet, "/toys/subcategory/acTION", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Action", gotSub)
}

func TestGetToy_NotFound(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodGet, "/toys/64c9e5b2a1000000000000aa", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetToy_InvalidID(t *testing.T) {
	store := &stubToyStore{
		findByID: func(_ context.Context, id string) (*models.Toy, error) {
			return nil, repository.ErrInvalidID
		},
	}
	rec := doRequest(t, newToyRouter(store), http.MethodGet, "/toys/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetToy_SecondReadServedFromCache(t *testing.T) {
	calls := 0
	store := &stubToyStore{
		findByID: func(_ context.Context, id string) (*models.Toy, error) {
			calls++
			return &models.Toy{ToyName: "Robot", Price: 25}, nil
		},
	}
	router := newToyRouter(store)

	rec := doRequest(t, router, http.MethodGet, "/toys/64c9e5b2a1000000000000aa", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/toys/64c9e5b2a1000000000000aa", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, calls)
}

func TestCreateToy(t *testing.T) {
	var created models.Toy
	store := &stubToyStore{
		create: func(_ context.Context, toy *models.Toy) (string, error) {
			created = *toy
			return "64c9e5b2a1000000000000aa", nil
		},
	}

	body := models.Toy{
		ToyName:     "Robot",
		SubCategory: "action",
		Price:       25,
		Quantity:    10,
		SellerEmail: "a@x.com",
	}
	rec := doRequest(t, newToyRouter(store), http.MethodPost, "/toys", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"insertedId":"64c9e5b2a1000000000000aa"}`, rec.Body.String())
	assert.Equal(t, "Action", created.SubCategory, "stored category is capitalized")
}

func TestListToys_SecondReadServedFromCache(t *testing.T) {
	calls := 0
	store := &stubToyStore{
		list: func(context.Context) ([]models.Toy, error) {
			calls++
			return []models.Toy{{ToyName: "Robot"}}, nil
		},
	}
	router := newToyRouter(store)

	for i := 0; i < 2; i++ {
		rec := doRequest(t, router, http.MethodGet, "/toys", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, calls)
}

func TestCreateToy_InvalidatesCachedLists(t *testing.T) {
	calls := 0
	store := &stubToyStore{
		list: func(context.Context) ([]models.Toy, error) {
			calls++
			return []models.Toy{{ToyName: "Robot"}}, nil
		},
		create: func(_ context.Context, toy *models.Toy) (string, error) {
			return "64c9e5b2a1000000000000aa", nil
		},
	}
	router := newToyRouter(store)

	rec := doRequest(t, router, http.MethodGet, "/toys", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := models.Toy{ToyName: "Car", SubCategory: "Sports", SellerEmail: "a@x.com"}
	rec = doRequest(t, router, http.MethodPost, "/toys", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/toys", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, calls, "the write must drop the cached gallery")
}

func TestCreateToy_MalformedBody(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodPost, "/toys", gin.H{"price": 25})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateToy(t *testing.T) {
	price := 30.0
	store := &stubToyStore{
		update: func(_ context.Context, id string, u models.ToyUpdate) (*mongo.UpdateResult, error) {
			require.NotNil(t, u.Price)
			assert.Equal(t, price, *u.Price)
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodPatch, "/toys/64c9e5b2a1000000000000aa", models.ToyUpdate{Price: &price})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
}

func TestUpdateToy_UnknownIDDoesNotUpsert(t *testing.T) {
	store := &stubToyStore{
		update: func(_ context.Context, id string, u models.ToyUpdate) (*mongo.UpdateResult, error) {
			return nil, repository.ErrNotFound
		},
	}

	price := 30.0
	rec := doRequest(t, newToyRouter(store), http.MethodPatch, "/toys/64c9e5b2a1000000000000aa", models.ToyUpdate{Price: &price})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateToy_NoFields(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodPatch, "/toys/64c9e5b2a1000000000000aa", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecrementToy(t *testing.T) {
	store := &stubToyStore{
		decrement: func(_ context.Context, id string) (*models.Toy, error) {
			return &models.Toy{ToyName: "Robot", Quantity: 4}, nil
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodPatch, "/toys/64c9e5b2a1000000000000aa/decrement", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"modifiedCount":1,"quantity":4}`, rec.Body.String())
}

func TestDecrementToy_AtFloor(t *testing.T) {
	store := &stubToyStore{
		decrement: func(_ context.Context, id string) (*models.Toy, error) {
			return nil, repository.ErrOutOfStock
		},
	}

	rec := doRequest(t, newToyRouter(store), http.MethodPatch, "/toys/64c9e5b2a1000000000000aa/decrement", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteToy(t *testing.T) {
	store := &stubToyStore{
		deleteFn: func(_ context.Context, id string) (int64, error) { return 1, nil },
	}

	rec := doRequest(t, newToyRouter(store), http.MethodDelete, "/toys/64c9e5b2a1000000000000aa", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
}

func TestDeleteToy_UnknownIDReportsZero(t *testing.T) {
	rec := doRequest(t, newToyRouter(&stubToyStore{}), http.MethodDelete, "/toys/64c9e5b2a1000000000000aa", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":0}`, rec.Body.String())
}
