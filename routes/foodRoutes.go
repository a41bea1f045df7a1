package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShantoNoor/FoodTitan-Backend/controllers"
)

func FoodRoutes(router *mux.Router, ctrl *controllers.FoodController) {
	router.HandleFunc("/foods", ctrl.GetFoods).Methods(http.MethodGet)
	router.HandleFunc("/foods", ctrl.CreateFood).Methods(http.MethodPost)
	router.HandleFunc("/foods/{_id}", ctrl.UpdateFood).Methods(http.MethodPut)
	router.HandleFunc("/foods/{_id}", ctrl.DeleteFood).Methods(http.MethodDelete)
}
