package validators

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
)

var (
	registerOnce sync.Once
	registerErr  error

	hourSlotPattern = regexp.MustCompile(`^\d{1,2}:00$`)
)

// RegisterBindings adds the custom tags used on request structs to gin's
// validator engine: package, isodate and hourslot.
func RegisterBindings() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

// Register also reports fields by their JSON names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("package", validPackage); err != nil {
		return err
	}
	if err := v.RegisterValidation("isodate", validISODate); err != nil {
		return err
	}
	return v.RegisterValidation("hourslot", validHourSlot)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func validPackage(fl validator.FieldLevel) bool {
	_, ok := domain.ParsePackage(fl.Field().String())
	return ok
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validHourSlot(fl validator.FieldLevel) bool {
	return hourSlotPattern.MatchString(fl.Field().String())
}
