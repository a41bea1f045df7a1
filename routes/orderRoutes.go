package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShantoNoor/FoodTitan-Backend/controllers"
)

func OrderRoutes(router *mux.Router, ctrl *controllers.OrderController) {
	router.HandleFunc("/orders", ctrl.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders", ctrl.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/{_id}", ctrl.DeleteOrder).Methods(http.MethodDelete)
}
