package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShantoNoor/FoodTitan-Backend/controllers"
)

func HomeRoutes(router *mux.Router, ctrl *controllers.HomeController) {
	router.HandleFunc("/", controllers.Liveness).Methods(http.MethodGet)
	router.HandleFunc("/home", ctrl.GetHome).Methods(http.MethodGet)
}
