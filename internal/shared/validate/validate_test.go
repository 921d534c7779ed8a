package validate_test

import (
	"encoding/json"
	"testing"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name      string   `form:"name" validate:"required,max=10"`
	State     string   `form:"state" validate:"required,usstate"`
	Phone     string   `form:"phone" validate:"phone"`
	ImageLink string   `form:"image_link" validate:"omitempty,imagelink"`
	Website   string   `form:"website" validate:"omitempty,weburl"`
	Genres    []string `form:"genres" validate:"dive,genre"`
}

func validSample() sampleForm {
	return sampleForm{
		Name:      "The Hop",
		State:     "CA",
		Phone:     "123-123-1234",
		ImageLink: "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		Website:   "https://www.themusicalhop.com",
		Genres:    []string{"Jazz", "Rock n Roll"},
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"415-000-1234", true},
		{"(415) 000 1234", true},
		{"4150001234", true},
		{"415.000.1234 ext 2", true},
		{"", false},
		{"415-0001", false},
		{"phone 415-000-1234", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Phone(tt.in))
		})
	}
}

func TestImageLink(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com/a.JPEG", true},
		{"https://images.unsplash.com/photo-1549213783-8284d0336c4f?auto=format&w=300", true},
		{"https://example.com/a.pdf", false},
		{"ftp://example.com/a.png", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.ImageLink(tt.in))
		})
	}
}

func TestWebURLAndState(t *testing.T) {
	assert.True(t, validate.WebURL("https://www.facebook.com/TheMusicalHop"))
	assert.False(t, validate.WebURL("www.facebook.com"))
	assert.False(t, validate.WebURL("https://"))

	assert.True(t, validate.USState("NY"))
	assert.False(t, validate.USState("ny"))
	assert.False(t, validate.USState("XX"))
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate.Struct("Venue", validSample()))
	})

	t.Run("field errors", func(t *testing.T) {
		f := validSample()
		f.Name = ""
		f.Phone = "nope"
		f.Website = "example"
		f.Genres = []string{"Jazz", "Polka"}

		err := validate.Struct("Venue", f)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))

		fields := apperr.As(err).FieldMap()
		assert.Equal(t, "This field is required.", fields["name"])
		assert.Equal(t, "Please provide a valid phone number.", fields["phone"])
		assert.Equal(t, "Invalid URL.", fields["website"])
		assert.Equal(t, "Not a valid choice: Polka", fields["genres"])
		assert.NotContains(t, fields, "state")
	})

	t.Run("max length", func(t *testing.T) {
		f := validSample()
		f.Name = "a name that is too long"
		err := validate.Struct("Venue", f)
		require.Error(t, err)
		assert.Equal(t, "Field cannot be longer than 10 characters.", apperr.As(err).Field("name"))
	})
}

func TestCheckbox(t *testing.T) {
	for _, in := range []string{"y", "on", "true", "1", "TRUE"} {
		var c validate.Checkbox
		require.NoError(t, c.UnmarshalParam(in))
		assert.True(t, c.Bool(), in)
	}

	var off validate.Checkbox
	require.NoError(t, off.UnmarshalParam("n"))
	assert.False(t, off.Bool())

	var payload struct {
		A validate.Checkbox `json:"a"`
		B validate.Checkbox `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": true, "b": "y"}`), &payload))
	assert.True(t, payload.A.Bool())
	assert.True(t, payload.B.Bool())
}
