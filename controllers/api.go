package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrBadRequest       = errors.New("Bad request")
	ErrDocumentNotFound = errors.New("Document not found")
	ErrInternalError    = errors.New("Internal error")
)

type apiResponse struct {
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}

func errorMessages(errs []error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return messages
}

func RespondOK(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, apiResponse{Data: obj})
}

func RespondBadRequestErr(c *gin.Context, errors []error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, apiResponse{Errors: errorMessages(errors)})
}

func RespondNotFoundErr(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, apiResponse{Errors: errorMessages([]error{ErrDocumentNotFound})})
}

func RespondInternalErr(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, apiResponse{Errors: errorMessages([]error{ErrInternalError})})
}
