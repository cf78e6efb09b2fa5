package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validation messages name the json field, not the Go one
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Error is the single classification every request failure funnels
// through before it becomes an HTTP response.
type Error struct {
	Code     int
	Resource string
	Reason   string
}

func (e *Error) Error() string {
	return e.Message()
}

// Message renders the user-visible text. An explicit reason wins;
// otherwise the code picks the template.
func (e *Error) Message() string {
	if e.Reason != "" {
		return e.Reason
	}

	switch e.Code {
	case http.StatusUnauthorized:
		return "Invalid Token."
	case http.StatusNotFound:
		return e.Resource + " Not Found."
	case http.StatusInternalServerError:
		return "Internal Server Error."
	}

	return "An Error Occurred."
}

func NotFound(resource string) *Error {
	return &Error{Code: http.StatusNotFound, Resource: resource}
}

func BadRequest(reason string) *Error {
	return &Error{Code: http.StatusBadRequest, Reason: reason}
}

func Unauthorized(reason string) *Error {
	return &Error{Code: http.StatusUnauthorized, Reason: reason}
}

func Internal() *Error {
	return &Error{Code: http.StatusInternalServerError}
}

// fail writes the {message} body for a classified error. Anything not
// already classified is a store/internal failure: logged, never leaked.
func fail(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, gin.H{"message": apiErr.Message()})
		return
	}

	log.WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
}

// bindingError reports malformed input the way the validation layer
// phrases it: "Param 'title' is invalid." / "Params 'a, b' are invalid."
func bindingError(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		params := make([]string, 0, len(verrs))
		for _, fieldErr := range verrs {
			params = append(params, fieldErr.Field())
		}

		noun, verb := "Param", "is"
		if len(params) > 1 {
			noun, verb = "Params", "are"
		}
		return BadRequest(fmt.Sprintf("%s '%s' %s invalid.", noun, strings.Join(params, ", "), verb))
	}

	return BadRequest(err.Error())
}

// deleted is the success body every destroy operation responds with.
func deleted(c *gin.Context, resource string) {
	c.JSON(http.StatusOK, gin.H{"message": resource + " deleted successfully!"})
}
