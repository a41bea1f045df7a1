package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ShantoNoor/FoodTitan-Backend/models"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
	"github.com/ShantoNoor/FoodTitan-Backend/services"
)

type stubOrderStore struct {
	orders       []bson.M
	deleteResult *repository.DeleteResult
	deletedID    primitive.ObjectID
	err          error
}

func (s *stubOrderStore) FindPopulated(ctx context.Context, filter bson.M) ([]bson.M, error) {
	return s.orders, s.err
}

func (s *stubOrderStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	s.deletedID = id
	return s.deleteResult, s.err
}

type stubPlacer struct {
	got   services.PlaceOrderInput
	order *models.Order
	food  *models.Food
	err   error
}

func (s *stubPlacer) Place(ctx context.Context, input services.PlaceOrderInput) (*models.Order, *models.Food, error) {
	s.got = input
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.order, s.food, nil
}

func orderRouter(ctrl *OrderController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/orders", ctrl.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", ctrl.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{_id}", ctrl.DeleteOrder).Methods(http.MethodDelete)
	return router
}

func TestPlaceOrderHandler(t *testing.T) {
	foodID := primitive.NewObjectID()
	quantity := int64(3)

	t.Run("responds 201 with the order and updated food pair", func(t *testing.T) {
		placer := &stubPlacer{
			order: &models.Order{ID: primitive.NewObjectID(), Buying_quantity: &quantity},
			food:  &models.Food{ID: foodID},
		}
		ctrl := NewOrderController(&stubOrderStore{}, placer)

		body := `{"food_id":"` + foodID.Hex() + `","buying_quantity":3,"name":"Margherita Pizza"}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		// the decoded input promotes the embedded order fields
		assert.Equal(t, foodID.Hex(), placer.got.FoodID)
		require.NotNil(t, placer.got.Buying_quantity)
		assert.EqualValues(t, 3, *placer.got.Buying_quantity)
		require.NotNil(t, placer.got.Name)
		assert.Equal(t, "Margherita Pizza", *placer.got.Name)

		var pair []json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
		assert.Len(t, pair, 2)
	})

	t.Run("missing food maps to 404", func(t *testing.T) {
		ctrl := NewOrderController(&stubOrderStore{}, &stubPlacer{err: repository.ErrNotFound})

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"food_id":"abc"}`))
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := NewOrderController(&stubOrderStore{}, &stubPlacer{err: repository.ErrInsufficientStock})

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"food_id":"abc"}`))
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		ctrl := NewOrderController(&stubOrderStore{}, &stubPlacer{})

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrdersHandler(t *testing.T) {
	store := &stubOrderStore{orders: []bson.M{{"name": "Margherita Pizza"}}}
	ctrl := NewOrderController(store, &stubPlacer{})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	orderRouter(ctrl).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Margherita Pizza", body[0]["name"])
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Run("reports the deleted count", func(t *testing.T) {
		id := primitive.NewObjectID()
		store := &stubOrderStore{deleteResult: &repository.DeleteResult{DeletedCount: 1}}
		ctrl := NewOrderController(store, &stubPlacer{})

		req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.Hex(), nil)
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id, store.deletedID)

		var body map[string]int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 1, body["deletedCount"])
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		ctrl := NewOrderController(&stubOrderStore{}, &stubPlacer{})

		req := httptest.NewRequest(http.MethodDelete, "/orders/not-an-id", nil)
		rec := httptest.NewRecorder()
		orderRouter(ctrl).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
