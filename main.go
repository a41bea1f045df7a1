package main

import (
	"net/http"
	"os"

	"github.com/go-chi/cors"
	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	database "github.com/ShantoNoor/FoodTitan-Backend/config"
	"github.com/ShantoNoor/FoodTitan-Backend/controllers"
	middleware "github.com/ShantoNoor/FoodTitan-Backend/middlewares"
	"github.com/ShantoNoor/FoodTitan-Backend/repository"
	"github.com/ShantoNoor/FoodTitan-Backend/routes"
	"github.com/ShantoNoor/FoodTitan-Backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}

	uri := os.Getenv("DB_URI")
	if uri == "" {
		logrus.Fatal("DB_URI is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	client, err := database.Connect(uri)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	logrus.Info("connected to MongoDB")

	validate := validator.New()
	users := repository.NewUserRepository(database.OpenCollection(client, "users"), validate)
	foods := repository.NewFoodRepository(database.OpenCollection(client, "foods"), validate)
	orders := repository.NewOrderRepository(database.OpenCollection(client, "orders"), validate)
	tx := repository.NewTxRunner(client)

	orderService := services.NewOrderService(foods, orders, tx)
	foodService := services.NewFoodService(foods)
	homeService := services.NewHomeService(foods, users)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	routes.HomeRoutes(router, controllers.NewHomeController(homeService))
	routes.UserRoutes(router, controllers.NewUserController(users))
	routes.FoodRoutes(router, controllers.NewFoodController(foods, foodService))
	routes.OrderRoutes(router, controllers.NewOrderController(orders, orderService))

	logrus.Infof("FoodTitan server listening on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
