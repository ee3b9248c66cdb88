package controllers

import (
	"net/http"
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// analytics endpoints use their own envelope with a server timestamp
func success(c *gin.Context, payload gin.H) {
	payload["status"] = "success"
	payload["timestamp"] = time.Now()
	c.JSON(http.StatusOK, payload)
}

func (ac *AnalyticsController) Recommendations(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	kind := c.DefaultQuery("type", "popular")

	var (
		recs []services.Recommendation
		err  error
	)
	switch kind {
	case "popular":
		recs, err = ac.Analytics.Popular(limit)
	case "similar":
		id, ok := paramFromQuery(c, "tiffin_id")
		if !ok {
			return
		}
		recs, err = ac.Analytics.Similar(id, limit)
	case "user":
		recs, err = ac.Analytics.ForUser(utils.CurrentUserID(c), limit)
	default:
		resp.BadRequest(c, "type must be popular, similar or user")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"type": kind, "recommendations": recs, "count": len(recs)})
}

func (ac *AnalyticsController) DemandPrediction(c *gin.Context) {
	id, ok := paramID(c, "tiffinId")
	if !ok {
		return
	}
	days := queryInt(c, "days", 7)

	forecast, err := ac.Analytics.PredictDemand(utils.CurrentUserID(c), id, days)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"prediction": forecast})
}

func (ac *AnalyticsController) CustomerSegmentation(c *gin.Context) {
	segments, err := ac.Analytics.SegmentCustomers(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"segments": segments})
}

func (ac *AnalyticsController) PriceOptimization(c *gin.Context) {
	id, ok := paramID(c, "tiffinId")
	if !ok {
		return
	}
	suggestion, err := ac.Analytics.OptimalPrice(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"suggestion": suggestion})
}
