package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// Created mirrors the {"success": true, "<key>": value} shape the booking
// site expects from create endpoints.
func Created(c *gin.Context, key string, value any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		key:       value,
	})
}
