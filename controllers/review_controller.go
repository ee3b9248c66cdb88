package controllers

import (
	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type ItemReviewReq struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (rc *ReviewController) AddItemReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req ItemReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Reviews.AddItemReview(utils.CurrentUserID(c), id, req.Rating, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rev)
}

func (rc *ReviewController) ListForTiffin(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	reviews, err := rc.Reviews.ListForTiffin(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

func (rc *ReviewController) AddOrderReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.OrderReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Reviews.AddOrderReview(utils.CurrentUserID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rev)
}

func (rc *ReviewController) GetOrderReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rev, err := rc.Reviews.GetOrderReview(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rev)
}
