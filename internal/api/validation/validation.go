// Package validation 注册自定义的 gin 绑定校验规则
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagDisplayName 用户名：字母、数字、下划线，不含空格
const TagDisplayName = "displayname"

var (
	displayNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	registerOnce  sync.Once
	registerErr   error
)

// Register 向 gin 的默认校验器注册自定义规则，可重复调用
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		// 错误中的字段名使用 json 名
		v.RegisterTagNameFunc(jsonFieldName)
		registerErr = v.RegisterValidation(TagDisplayName, func(fl validator.FieldLevel) bool {
			return displayNameRe.MatchString(fl.Field().String())
		})
	})
	return registerErr
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// FieldError 从绑定错误中取出第一个出错字段及提示，非校验错误返回 ok=false
func FieldError(err error) (field, message string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	fe := verrs[0]
	return fe.Field(), describe(fe), true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " 不能为空"
	case "min":
		return fe.Field() + " 长度不能小于 " + fe.Param()
	case "max":
		return fe.Field() + " 长度不能超过 " + fe.Param()
	case "email":
		return fe.Field() + " 不是有效的邮箱地址"
	case "url":
		return fe.Field() + " 不是有效的 URL"
	case TagDisplayName:
		return fe.Field() + " 只能包含字母、数字和下划线"
	default:
		return fe.Field() + " 校验失败: " + fe.Tag()
	}
}
