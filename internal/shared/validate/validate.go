// Package validate holds the form rules shared by the venue, artist and
// show forms, registered as go-playground/validator tags.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"fyyur/internal/genres"
	"fyyur/internal/shared/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex     = regexp.MustCompile(`^\(?\d{3}\D{0,3}\d{3}\D{0,3}\d{4}`)
	imageExtRegex  = regexp.MustCompile(`(?i)\.(jpg|jpeg|gif|png)$`)
	anyExtRegex    = regexp.MustCompile(`\.[A-Za-z0-9]{1,5}$`)
	indexSuffixRgx = regexp.MustCompile(`\[\d+\]$`)
)

// States is the list of accepted state codes, in form order
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var stateSet = func() map[string]bool {
	m := make(map[string]bool, len(States))
	for _, s := range States {
		m[s] = true
	}
	return m
}()

var messages = map[string]string{
	"required":  "This field is required.",
	"phone":     "Please provide a valid phone number.",
	"imagelink": "The image link provided is not a valid link to an image",
	"weburl":    "Invalid URL.",
	"usstate":   "Not a valid choice.",
	"genre":     "Not a valid choice.",
	"gt":        "Please choose a value.",
}

var std = New()

// New returns a validator with the custom tags registered and field names
// reported by their form tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	}))
	must(v.RegisterValidation("imagelink", func(fl validator.FieldLevel) bool {
		return ImageLink(fl.Field().String())
	}))
	must(v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		return WebURL(fl.Field().String())
	}))
	must(v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return USState(fl.Field().String())
	}))
	must(v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genres.IsValid(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates s and converts failures into a ValidationError with one
// detail per offending field. entity prefixes the error message.
func Struct(entity string, s interface{}) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation(fmt.Sprintf("invalid %s", strings.ToLower(entity)), apperr.FieldError{
			Message: err.Error(),
		})
	}

	details := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperr.FieldError{
			Field:   indexSuffixRgx.ReplaceAllString(fe.Field(), ""),
			Message: message(fe),
		})
	}
	return apperr.Validation(fmt.Sprintf("invalid %s", strings.ToLower(entity)), details...)
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "max" {
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	}
	if fe.Tag() == "genre" {
		return fmt.Sprintf("Not a valid choice: %v", fe.Value())
	}
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}

// Phone reports whether s starts with a ten digit phone number, allowing up
// to three separators between the groups ("415-000-1234", "(415) 000 1234").
func Phone(s string) bool {
	return phoneRegex.MatchString(s)
}

// WebURL reports whether s is an absolute http or https URL with a host.
func WebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ImageLink reports whether s is a web URL that can point to an image: when
// the path carries a file extension it must be jpg, jpeg, gif or png. CDN
// paths without an extension are accepted.
func ImageLink(s string) bool {
	if !WebURL(s) {
		return false
	}
	u, _ := url.Parse(s)
	path := strings.TrimSuffix(u.Path, "/")
	if !anyExtRegex.MatchString(path) {
		return true
	}
	return imageExtRegex.MatchString(path)
}

// USState reports whether s is one of States.
func USState(s string) bool {
	return stateSet[s]
}
