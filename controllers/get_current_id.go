package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}

func currentUsername(c *gin.Context) string {
	v, ok := c.Get("username")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
