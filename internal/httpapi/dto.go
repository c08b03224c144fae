package httpapi

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/online-catalogue/internal/catalogue"
	"github.com/Spok95/online-catalogue/internal/models"
)

type studentRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Age       int    `json:"age" binding:"min=1,max=100"`
}

func (r studentRequest) fields() catalogue.StudentFields {
	return catalogue.StudentFields{FirstName: r.FirstName, LastName: r.LastName, Age: r.Age}
}

type addressRequest struct {
	City   string `json:"city" binding:"required,max=50"`
	Street string `json:"street" binding:"required,max=50"`
	Number int    `json:"number" binding:"min=1"`
}

func (r addressRequest) fields() catalogue.AddressFields {
	return catalogue.AddressFields{City: r.City, Street: r.Street, Number: r.Number}
}

type markRequest struct {
	SubjectID int64 `json:"subjectId" binding:"gt=0"`
	Value     int   `json:"value" binding:"min=1,max=10"`
}

type subjectRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	TeacherID int64  `json:"teacherId" binding:"gt=0"`
}

// Rank is decoded by name; an unknown name fails the JSON decoding.
type teacherRequest struct {
	Name string       `json:"name" binding:"required,max=50"`
	Rank *models.Rank `json:"rank" binding:"required"`
}

func pathID(c *gin.Context, name string) (int64, error) {
	return parseID(c.Param(name), name)
}

func parseID(v, name string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// queryBool reads an optional boolean query parameter.
func queryBool(c *gin.Context, name string) (bool, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return b, nil
}
