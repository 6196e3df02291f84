package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Total  int    `json:"total"`
	Query  string `json:"query"`
	Status string `json:"status"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// List writes the visible subset together with the filters that produced it.
func List[T any](c *gin.Context, data []T, query, status string) {
	if data == nil {
		data = []T{}
	}
	if status == "" {
		status = "all"
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:   data,
		Total:  len(data),
		Query:  query,
		Status: status,
	})
}
