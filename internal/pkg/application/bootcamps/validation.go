package bootcamps

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"unicode"

	"github.com/diwise/devcamper-api/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/devcamper-api/pkg/types"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("career", func(fl validator.FieldLevel) bool {
		return lo.Contains(types.Careers, fl.Field().String())
	})

	_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		u, err := url.ParseRequestURI(fl.Field().String())
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})

	_ = v.RegisterValidation("lnglat", func(fl validator.FieldLevel) bool {
		coords := fl.Field()
		if coords.Kind() != reflect.Slice || coords.Len() != 2 {
			return false
		}

		lon, lat := coords.Index(0).Float(), coords.Index(1).Float()
		return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
	})

	return v
}

var messages = map[string]string{
	"name.required":        "Please add a name",
	"name.max":             "Name can not be more than 50 characters",
	"description.required": "Please add a description",
	"description.max":      "Description can not be more than 500 characters",
	"website.weburl":       "Please use a valid URL with HTTP or HTTPS",
	"phone.max":            "Phone number can not be longer than 20 characters",
	"email.email":          "Please add a valid email",
	"careers.required":     "Please add at least one career",
	"careers.min":          "Please add at least one career",
	"averageRating.min":    "Rating must be at least 1",
	"averageRating.max":    "Rating can not be more than 10",
	"averageCost.min":      "Average cost can not be negative",
}

// validationError converts the result of a struct validation into a tagged
// validation error carrying one message per failed rule.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return database.ValidationFailed(err.Error())
	}

	msgs := []string{}

	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}

	return database.ValidationFailed(lo.Uniq(msgs)...)
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "career" {
		return fmt.Sprintf("`%v` is not a valid career", fe.Value())
	}

	field := fe.Field()
	if strings.HasPrefix(fe.Namespace(), "Bootcamp.location.") {
		field = "location"
	}

	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}

	if field == "location" {
		return database.InvalidLocationMessage
	}

	return fmt.Sprintf("Invalid value for %s", field)
}

// Slugify turns a name into a lower case, dash separated url fragment
func Slugify(name string) string {
	var sb strings.Builder

	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			sb.WriteRune(r)
			dash = false
		case r == '&':
			sb.WriteString("and")
			dash = false
		case r == '$':
			sb.WriteString("dollar")
			dash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if !dash && sb.Len() > 0 {
				sb.WriteRune('-')
				dash = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
