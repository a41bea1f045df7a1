package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/ShantoNoor/FoodTitan-Backend/helper"
	"github.com/ShantoNoor/FoodTitan-Backend/services"
)

type HomeSummarizer interface {
	Summary(ctx context.Context) (*services.HomeSummary, error)
}

type HomeController struct {
	home HomeSummarizer
}

func NewHomeController(home HomeSummarizer) *HomeController {
	return &HomeController{home: home}
}

func (c *HomeController) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	summary, err := c.home.Summary(ctx)
	if err != nil {
		helper.RespondError(w, err)
		return
	}

	helper.RespondJSON(w, http.StatusOK, summary)
}

// Liveness is the plain-text root probe.
func Liveness(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "FoodTitan server is Running")
}
