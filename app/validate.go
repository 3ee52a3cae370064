package app

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError 校验失败时返回给前端的单条记录
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// Rule 对 JSON body 里的一个字段做检查，通过返回 nil
type Rule func(body map[string]any) *FieldError

var check = validator.New()

func RequiredString(field, msg string) Rule {
	return func(body map[string]any) *FieldError {
		s, ok := body[field].(string)
		if !ok || check.Var(s, "required") != nil {
			return &FieldError{Msg: msg, Param: field, Location: "body"}
		}
		return nil
	}
}

func IntInRange(field string, min, max int64, msg string) Rule {
	return func(body map[string]any) *FieldError {
		// JSON 数字解出来是 float64，先确认是整数
		f, ok := body[field].(float64)
		if !ok || f != math.Trunc(f) {
			return &FieldError{Msg: msg, Param: field, Location: "body"}
		}
		if check.Var(int64(f), fmt.Sprintf("gte=%d,lte=%d", min, max)) != nil {
			return &FieldError{Msg: msg, Param: field, Location: "body"}
		}
		return nil
	}
}

// Validate 挂在路由上的校验中间件：有任何字段不过就 400 短路，
// body 用 ShouldBindBodyWith 缓存，handler 还能再绑一次。
func Validate(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := map[string]any{}
		_ = c.ShouldBindBodyWith(&body, binding.JSON)

		var errs []FieldError
		for _, rule := range rules {
			if fe := rule(body); fe != nil {
				errs = append(errs, *fe)
			}
		}
		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, H{"errors": errs})
			return
		}
		c.Next()
	}
}
