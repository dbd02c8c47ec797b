package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	httpez "github.com/Thaihung204/GENTRY-BE/internal/transport/http/ez"
)

func mountRefDataActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Occasion]{
		Method: http.MethodGet,
		Path:   "/occasions",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Occasion, error) {
			return d.RefData.Occasions(c)
		},
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Occasion]{
		Method: http.MethodGet,
		Path:   "/occasions/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Occasion, error) {
			id, err := pathID(c)
			if err != nil {
				return nil, err
			}
			return d.RefData.OccasionByID(id)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Weather]{
		Method: http.MethodGet,
		Path:   "/weathers",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Weather, error) {
			return d.RefData.Weathers(c)
		},
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Weather]{
		Method: http.MethodGet,
		Path:   "/weathers/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Weather, error) {
			id, err := pathID(c)
			if err != nil {
				return nil, err
			}
			return d.RefData.WeatherByID(id)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Style]{
		Method: http.MethodGet,
		Path:   "/styles",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Style, error) {
			return d.RefData.Styles(c)
		},
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Style]{
		Method: http.MethodGet,
		Path:   "/styles/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Style, error) {
			id, err := pathID(c)
			if err != nil {
				return nil, err
			}
			return d.RefData.StyleByID(id)
		},
	})
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, httpez.BadRequest("invalid id")
	}
	return id, nil
}
