package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnoseDiseaseValidate(t *testing.T) {
	t.Run("valid with optional userId omitted", func(t *testing.T) {
		req := DiagnoseDisease{ImageData: "aGVsbG8="}
		assert.Nil(t, req.Validate())
	})

	t.Run("missing imageData", func(t *testing.T) {
		req := DiagnoseDisease{UserID: "1"}
		fields := req.Validate()
		assert.Contains(t, fields, "imageData")
		assert.Equal(t, []string{"imageData is required"}, fields["imageData"])
	})

	t.Run("whitespace-only imageData is rejected", func(t *testing.T) {
		req := DiagnoseDisease{ImageData: "   "}
		assert.Contains(t, req.Validate(), "imageData")
	})
}

func TestQueryValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := Query{Query: "tomato prices this week", UserID: "1"}
		assert.Nil(t, req.Validate())
	})

	t.Run("missing query", func(t *testing.T) {
		fields := Query{}.Validate()
		assert.Contains(t, fields, "query")
	})
}

func TestWeatherValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, Weather{Location: "Mysore, Karnataka"}.Validate())
	})

	t.Run("missing location", func(t *testing.T) {
		fields := Weather{}.Validate()
		assert.Contains(t, fields, "location")
	})
}

func TestRegisterUserValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, RegisterUser{FirstName: "Ravi"}.Validate())
	})

	t.Run("missing firstName", func(t *testing.T) {
		fields := RegisterUser{Email: "ravi@example.com"}.Validate()
		assert.Contains(t, fields, "firstName")
	})

	t.Run("malformed email", func(t *testing.T) {
		fields := RegisterUser{FirstName: "Ravi", Email: "not-an-email"}.Validate()
		assert.Contains(t, fields, "email")
	})

	t.Run("empty email is fine", func(t *testing.T) {
		assert.Nil(t, RegisterUser{FirstName: "Ravi"}.Validate())
	})
}
