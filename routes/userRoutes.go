package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ShantoNoor/FoodTitan-Backend/controllers"
)

func UserRoutes(router *mux.Router, ctrl *controllers.UserController) {
	router.HandleFunc("/users", ctrl.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users", ctrl.CreateUser).Methods(http.MethodPost)
}
