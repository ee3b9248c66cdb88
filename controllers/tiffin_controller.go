package controllers

import (
	"strconv"

	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/repository"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type TiffinController struct {
	Tiffins *services.TiffinService
	Reviews *services.ReviewService
}

func NewTiffinController(tiffins *services.TiffinService, reviews *services.ReviewService) *TiffinController {
	return &TiffinController{Tiffins: tiffins, Reviews: reviews}
}

// List is the public catalog with optional search and filters.
func (tc *TiffinController) List(c *gin.Context) {
	f := repository.TiffinFilter{
		Search:   c.Query("search"),
		MealType: c.Query("mealType"),
		City:     c.Query("city"),
	}
	if v := c.Query("vegetarian"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid vegetarian")
			return
		}
		f.Vegetarian = &b
	}

	items, err := tc.Tiffins.ListVisible(f)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (tc *TiffinController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := tc.Tiffins.GetVisible(id)
	if err != nil {
		fail(c, err)
		return
	}
	reviews, err := tc.Reviews.ListForTiffin(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"tiffin": t, "reviews": reviews})
}

func (tc *TiffinController) Create(c *gin.Context) {
	var req services.TiffinIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := tc.Tiffins.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

func (tc *TiffinController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.TiffinIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	t, err := tc.Tiffins.Update(utils.CurrentUserID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TiffinController) ListMine(c *gin.Context) {
	items, err := tc.Tiffins.ListMine(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (tc *TiffinController) ToggleAvailability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := tc.Tiffins.ToggleAvailability(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// ListPending and Approve are the admin moderation queue.
func (tc *TiffinController) ListPending(c *gin.Context) {
	items, err := tc.Tiffins.ListPending()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (tc *TiffinController) Approve(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := tc.Tiffins.Approve(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}
