package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-schedule-viewer/internal/config"
	"github.com/suchimauz/clinic-schedule-viewer/internal/core/ports/in"
	"github.com/suchimauz/clinic-schedule-viewer/internal/utils"
)

type ScheduleController struct {
	useCase in.ScheduleViewerUseCase
	cfg     *config.Config
}

func NewScheduleController(useCase in.ScheduleViewerUseCase, cfg *config.Config) *ScheduleController {
	return &ScheduleController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/doctors", c.listDoctors)
		api.GET("/schedule/:doctorId/day", c.dayView)
		api.GET("/schedule/:doctorId/week", c.weekView)
	}
}

func (c *ScheduleController) listDoctors(ctx *gin.Context) {
	doctors, err := c.useCase.Doctors(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

func (c *ScheduleController) dayView(ctx *gin.Context) {
	doctorID := ctx.Param("doctorId")

	// Без параметра date показываем сегодняшний день
	date := time.Now().In(config.TimeZone)
	if dateParam := ctx.Query("date"); dateParam != "" {
		parsed, err := utils.ParseDate(dateParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		date = parsed
	}

	grid, err := c.useCase.DayView(ctx.Request.Context(), doctorID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Врача нет в реестре - это не сбой, а отсутствие записи
	if grid.Doctor == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	ctx.JSON(http.StatusOK, grid)
}

func (c *ScheduleController) weekView(ctx *gin.Context) {
	doctorID := ctx.Param("doctorId")

	// Без параметра weekStart показываем текущую неделю с понедельника
	weekStart := utils.StartOfWeek(time.Now().In(config.TimeZone))
	if weekStartParam := ctx.Query("weekStart"); weekStartParam != "" {
		parsed, err := utils.ParseDate(weekStartParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekStart format"})
			return
		}
		// Любую дату внутри недели приводим к ее понедельнику
		weekStart = utils.StartOfWeek(parsed)
	}

	grid, err := c.useCase.WeekView(ctx.Request.Context(), doctorID, weekStart)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if grid.Doctor == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	ctx.JSON(http.StatusOK, grid)
}

func (c *ScheduleController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
